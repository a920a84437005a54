package encoder

import (
	"sync"

	"github.com/wippyai/contract-abi/layout"
)

const (
	// Pool limits to prevent memory bloat
	poolMaxElems  = 1024
	poolInitElems = 8
)

// scratch holds per-tuple element encodings and size info.
type scratch struct {
	encodings [][]byte
	infos     []layout.Info
}

var scratchPool = sync.Pool{
	New: func() any {
		return &scratch{
			encodings: make([][]byte, 0, poolInitElems),
			infos:     make([]layout.Info, 0, poolInitElems),
		}
	},
}

func getScratch(n int) *scratch {
	s := scratchPool.Get().(*scratch)
	if cap(s.encodings) < n {
		s.encodings = make([][]byte, n)
		s.infos = make([]layout.Info, n)
	} else {
		s.encodings = s.encodings[:n]
		s.infos = s.infos[:n]
	}
	return s
}

func putScratch(s *scratch) {
	if s == nil || cap(s.encodings) > poolMaxElems {
		return // reject oversized
	}
	clear(s.encodings)
	s.encodings = s.encodings[:0]
	s.infos = s.infos[:0]
	scratchPool.Put(s)
}
