//go:build gpu

package main

// Registers the GPU accelerator with gg; builds with -tags gpu render
// frames on the GPU when an adapter is available.
import _ "github.com/gogpu/gg/gpu"
