// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"
)

var headCmd = &cobra.Command{
	Use:   "head <url>",
	Short: "Fetch response metadata for a URL without the body",
	Args:  cobra.ExactArgs(1),
	RunE:  runHead,
}

func runHead(cmd *cobra.Command, args []string) error {
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

	r, err := newRequest(cmd, http.MethodHead, args[0])
	if err != nil {
		return err
	}

	res, err := cl.Do(r)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", res.Response.Proto, res.Response.Status)
	names := make([]string, 0, len(res.Response.Header))
	for name := range res.Response.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range res.Response.Header[name] {
			fmt.Fprintf(out, "%s: %s\n", name, value)
		}
	}
	return nil
}
