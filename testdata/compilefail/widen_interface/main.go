package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/bvec"
)

type readerInserter interface {
	InsertBefore(io.Reader) error
}

func main() {
	v := bvec.New[*bytes.Buffer]()
	c, _ := v.CursorAt(0)
	var ins readerInserter = c
	_ = ins.InsertBefore(strings.NewReader("smuggled"))
}
