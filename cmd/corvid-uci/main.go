// Command corvid-uci runs the engine as a UCI-speaking subprocess, the
// way a GUI (cutechess, Arena, a lichess bot bridge) expects to drive it.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/corvidchess/corvid/internal/nnue"
	"github.com/corvidchess/corvid/internal/search"
	"github.com/corvidchess/corvid/internal/uci"
)

var (
	evalFile = flag.String("evalfile", "corvid.nnue", "path to the NNUE weight blob")
	hashMiB  = flag.Int("hash", 64, "transposition table size in MiB")
)

func main() {
	flag.Parse()

	net := loadNetwork(*evalFile)

	eng := search.NewEngine(net, *hashMiB)
	protocol := uci.New(eng)
	protocol.Run()
}

// loadNetwork reads the NNUE weight blob. A malformed or missing weight
// file is a fatal startup error (§7): the engine has no fallback
// evaluation to degrade to, so there is nothing safe to do but abort
// with a diagnostic.
func loadNetwork(path string) *nnue.Network {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("corvid: cannot open NNUE weights %q: %v", path, err)
	}
	defer f.Close()

	net, err := nnue.LoadWeights(f)
	if err != nil {
		log.Fatalf("corvid: cannot load NNUE weights %q: %v", path, err)
	}
	return net
}
