package main

import (
	"os"
	"path/filepath"
)

const infoFileName = "kitaoka_illusion_info.txt"

const infoText = `Kitaoka Illusion - Quick Facts
==============================

What is this?
  A variant of the "optical illusion of diagonal beveled tiles" popularised
  by Professor Akiyoshi Kitaoka of Ritsumeikan University, Japan.  The
  perfectly straight diagonal lines appear to curve or tilt because of the
  asymmetric light/shadow bevels that rotate in an AA BB CC DD sequence.

How does it work?
  Each square tile has a raised-button bevel (shadow on one side, highlight
  on the other).  When the bevel direction shifts every two tiles along a
  diagonal, your brain interprets the straight lines as bending.  The
  checkerboard colouring amplifies the effect.

Who is Akiyoshi Kitaoka?
  A Japanese Professor of Psychology at Ritsumeikan University, Kyoto.
  He is one of the world's leading researchers on visual illusions and has
  created hundreds of remarkable optical illusion designs.

Generated by illusionfun.
`

// writeInfoFile drops the static info text beside the generated SVG.  An
// existing file is never overwritten.
func writeInfoFile(dir string) (string, error) {
	path := filepath.Join(dir, infoFileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}
	return path, os.WriteFile(path, []byte(infoText), 0o644)
}
