package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailfmt/header"
	_ "github.com/zostay/go-mailfmt/header/encoding"
)

var headersCmd = &cobra.Command{
	Use:   "headers file",
	Short: "Re-encodes the header block of a message through the library",
	Args:  cobra.ExactArgs(1),
	Run:   RunHeaders,
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

// RunHeaders reads the header block of the given message file, unfolds
// it, pushes every field through Normalize and EncodeValue, and prints
// the result so it can be diffed against the input by hand.
func RunHeaders(cmd *cobra.Command, args []string) {
	path := args[0]
	msgFile, err := os.Open(path)
	if err != nil {
		panic(err)
	}
	defer func() { _ = msgFile.Close() }()

	var lines []string
	s := bufio.NewScanner(msgFile)
	for s.Scan() {
		line := strings.TrimRight(s.Text(), "\r")
		if line == "" {
			break
		}
		if len(lines) > 0 && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			// folded continuation, rejoin with the previous line
			lines[len(lines)-1] += " " + strings.TrimLeft(line, " \t")
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		panic(err)
	}

	for _, line := range lines {
		name, body, found := strings.Cut(line, ":")
		if !found {
			fmt.Println(line)
			continue
		}

		key := header.Normalize(name)
		value, err := header.EncodeValue(key, strings.TrimSpace(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", key, err)
			continue
		}

		fmt.Printf("%s: %s\n", key, value)
	}
}
