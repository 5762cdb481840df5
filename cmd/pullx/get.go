// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Fetch a URL and print or save the response body",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	cl, err := newClient()
	if err != nil {
		return err
	}
	defer cl.CloseIdleConnections()

	ctx := cmd.Context()
	if options.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.timeout)
		defer cancel()
	}
	cmd.SetContext(ctx)

	r, err := newRequest(cmd, http.MethodGet, args[0])
	if err != nil {
		return err
	}

	res, err := cl.Do(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s (%d bytes in %s)\n",
		res.Response.Proto, res.Response.Status, len(res.Body), res.Duration().Round(time.Millisecond))

	if options.output != "" {
		return os.WriteFile(options.output, res.Body, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(res.Body)
	return err
}
