// Copyright 2026 The pullx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pullx/pullx"
	"github.com/pullx/pullx/nhttp"
	"github.com/pullx/pullx/transfer"
)

var options struct {
	debug   bool
	http2   bool
	timeout time.Duration
	maxBody int64
	headers []string
	output  string
}

// Root command
var rootCmd = &cobra.Command{
	Use:   "pullx",
	Short: "Fetch URLs through the pullx client",
	Long: `pullx is a small HTTP fetch tool built on the pullx client library.
It runs each transfer through the library's callback-to-poll bridge, so it
exercises the same code paths an embedding application would.`,
	Example: `  pullx get https://example.com/
  pullx get --max-body 1048576 -o page.html https://example.com/
  pullx head https://example.com/`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&options.debug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&options.http2, "http2", false,
		"Configure the transport for HTTP/2 over TLS")
	rootCmd.PersistentFlags().DurationVar(&options.timeout, "timeout", 30*time.Second,
		"Overall transfer deadline (0 means none)")
	rootCmd.PersistentFlags().Int64Var(&options.maxBody, "max-body", 0,
		"Maximum response body size in bytes (0 means unbounded)")
	rootCmd.PersistentFlags().StringArrayVarP(&options.headers, "header", "H", nil,
		"Additional request header, as \"Name: value\" (repeatable)")

	getCmd.Flags().StringVarP(&options.output, "output", "o", "",
		"Write the response body to this file instead of stdout")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if options.debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		return nil
	}

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(headCmd)
}

func newClient() (*pullx.Client, error) {
	cl := &pullx.Client{
		MaxResponseBufferSize: options.maxBody,
	}
	if options.http2 {
		backend, err := nhttp.NewHTTP2()
		if err != nil {
			return nil, fmt.Errorf("failed to configure HTTP/2 transport: %w", err)
		}
		cl.Backend = backend
	}
	return cl, nil
}

func newRequest(cmd *cobra.Command, method, url string) (*transfer.Request, error) {
	ctx := cmd.Context()
	r, err := transfer.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	for _, h := range options.headers {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q (want \"Name: value\")", h)
		}
		r.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return r, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
