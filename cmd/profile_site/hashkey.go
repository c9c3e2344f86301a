package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/jonathan/profile-site/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashKeyCost int

var hashKeyCmd = &cobra.Command{
	Use:   "hash-key [key]",
	Short: "Print a bcrypt hash of an admin key for ADMIN_KEY_HASH",
	Long:  "Hashes the key given as argument, or the first line of standard input when no argument is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHashKey,
}

func init() {
	hashKeyCmd.Flags().IntVar(&hashKeyCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	rootCmd.AddCommand(hashKeyCmd)
}

func runHashKey(cmd *cobra.Command, args []string) error {
	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read key from stdin: %w", err)
		}
		key = strings.TrimRight(line, "\r\n")
	}

	hash, err := config.HashKey(key, hashKeyCost)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
