package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "accountability-cli",
		Short: "Accountability service CLI tool",
		Long:  `A command line interface for interacting with the accountability API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the accountability API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(uberCmd())
	rootCmd.AddCommand(dashboardCmd())
	rootCmd.AddCommand(healthCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func reconcileCmd() *cobra.Command {
	var uberEarnings string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Run the nightly reconciliation pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{}
			if uberEarnings != "" {
				payload["uber_earnings"] = uberEarnings
			}
			return postJSON("/reconciliation/run", payload)
		},
	}

	cmd.Flags().StringVar(&uberEarnings, "uber", "", "Uber earnings to include, e.g. 42.50")
	return cmd
}

func uberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uber <amount>",
		Short: "Process Uber earnings toward debt or balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postJSON("/reconciliation/uber-earnings", map[string]string{"amount": args[0]})
		},
	}
}

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the aggregated accountability dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/dashboard")
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/health")
		},
	}
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(parsed)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}
