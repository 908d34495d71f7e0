package main

import (
	"bytes"
	"io"

	"github.com/npillmayer/bvec"
)

type bufferInserter interface {
	InsertBefore(*bytes.Buffer) error
}

func main() {
	v := bvec.New[*bytes.Buffer]()
	c, _ := v.CursorAt(0)
	var ins bufferInserter = c
	_ = ins.InsertBefore(new(bytes.Buffer))
	if p, ok := c.Current(); ok {
		var r io.Reader = *p
		_ = r
	}
	c.Close()
}
