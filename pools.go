// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplejson

import "sync"

// TODO(https://golang.org/issue/47657): Use sync.PoolOf.

var scannerPool = sync.Pool{New: func() any { return new(scanner) }}

func getScanner(d *Decoder, s string) *scanner {
	sc := scannerPool.Get().(*scanner)
	sc.reset(d, s)
	return sc
}

// putScanner returns sc to the pool, keeping only its name table,
// so that pooled scanners do not pin a document or a Decoder.
func putScanner(sc *scanner) {
	*sc = scanner{names: sc.names}
	scannerPool.Put(sc)
}
