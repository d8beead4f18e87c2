package model

import "io"

// SecretFile is the byte stream to hide inside an image. Content is read once,
// sequentially; Size must match the number of bytes Content will yield.
type SecretFile struct {
	Name    string
	Content io.Reader
	Size    int64
}
