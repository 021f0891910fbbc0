// Copyright ©2021 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqlen writes a minidot sequence length table from FASTA files, one
// set per file named by the file's basename. With -fa it also writes
// each set concatenated into a single sequence, the layout that set
// level PAF coordinates refer to.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/minidot/tlen"
)

var (
	outf = flag.String("out", "", "output length table file name. Defaults to stdout.")
	fa   = flag.String("fa", "", "write set-concatenated sequences to this FASTA file.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	var out *os.File
	var err error
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	defer out.Close()
	w := tlen.NewWriter(out)

	var fw *fasta.Writer
	if *fa != "" {
		faf, err := os.Create(*fa)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *fa, err)
		}
		defer faf.Close()
		fw = fasta.NewWriter(faf, 60)
	}

	for _, path := range flag.Args() {
		set := setName(path)
		in, err := os.Open(path)
		if err != nil {
			log.Fatalf("failed to open %q: %v", path, err)
		}

		joined := linear.NewSeq(set, nil, alphabet.DNA)
		sc := seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)))
		for sc.Next() {
			s := sc.Seq().(*linear.Seq)
			err = w.Write(tlen.SeqLen{Set: set, Name: s.Name(), Length: s.Len()})
			if err != nil {
				log.Fatalf("failed to write length of %q: %v", s.Name(), err)
			}
			if fw != nil {
				joined.Seq = append(joined.Seq, s.Seq...)
			}
		}
		if err := sc.Error(); err != nil {
			log.Fatalf("failed during read of %q: %v", path, err)
		}
		in.Close()

		if fw != nil {
			if _, err := fw.Write(joined); err != nil {
				log.Fatalf("failed to write sequence %q: %v", set, err)
			}
		}
	}
}

// setName is the file's basename truncated at the first dot.
func setName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
