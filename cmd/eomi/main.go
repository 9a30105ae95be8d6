/*
Package main implements the eomi ending extraction server and CLI.

Eomi learns Korean predicate endings from a raw corpus without a tagged
dictionary of endings. It counts the eojeols of the corpus, builds an L-R
graph of every (left, right) split and scores each right part by how many of
its left parts are registered predicate roots.

The default command trains on a corpus and then serves msgpack IPC requests
on stdin/stdout, which lets editors and pipelines query endings from a
long-lived process.

# Usage

Train and serve with the dictionaries under data/:

	eomi --corpus sentences.txt --scorer support_ratio

Use a custom dictionary dir and enable debug logs:

	eomi --corpus sentences.txt --dict /path/to/dicts -d

Rank the extracted endings in a table:

	eomi rank --corpus sentences.txt --limit 30 --min-score 0.5

Score candidate endings interactively:

	eomi repl --corpus sentences.txt

The dictionary dir holds plain text files with one entry per line:
noun_pos_features.txt, Root/Adjective.txt, Root/Verb.txt and the optional
Root/Composable.txt.

# Configuration

Runtime configuration is read from eomi.toml in the user config dir, or from
the file given with --config. Missing files are created with defaults:

	[extractor]
	min_eojeol_count = 2
	prune_every = 100000
	max_left_length = 10
	max_right_length = 9
	min_r_score = 0.3
	scorer = ""
	verbose = true

	[dict]
	dir = "data/"

	[server]
	max_limit = 100
	cache_size = 4096
	enable_filter = false

	[cli]
	default_limit = 20
	default_min_score = 0.3

Flags override the file. Scoring is off by default: the server then answers
predict and extract requests with a 501 error. Set scorer to a registered
strategy to enable it. The only builtin one, "support_ratio", is a simple
heuristic (share of the L-side count carried by roots), not a tuned formula:

	eomi rank --corpus sentences.txt --scorer support_ratio

With enable_filter the server refuses endings that are not pure Hangul.
"eomi config" prints the active config and "eomi config --reset" rewrites
it with the defaults.

# IPC Protocol

Requests and responses are msgpack maps:

	{"id": "req1", "action": "predict", "r": "었다"}
	{"id": "req1", "p": {"r": "었다", "score": 0.92, "valid": true}, "cached": false, "t": 31}

See the server package for every action.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "eomi"
	gh      = "https://github.com/bastiangx/eomi"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
