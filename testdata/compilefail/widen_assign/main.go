package main

import (
	"bytes"
	"io"

	"github.com/npillmayer/bvec"
)

func main() {
	v := bvec.New[*bytes.Buffer]()
	c, _ := v.CursorAt(0)
	var r *bvec.CursorMut[io.Reader] = c
	_ = r
}
