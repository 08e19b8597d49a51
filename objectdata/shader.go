// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package objectdata

import (
	"fmt"

	"github.com/gogpu/naga"
)

// ShaderData is the payload stored for a shader name. Shader objects have
// no backend-allocated global name; the source and its compiled form are
// the whole host-side state the translator keeps.
type ShaderData struct {
	// Stage is the guest's shader stage enum, kept verbatim.
	Stage uint32

	// Source is the WGSL source the translator produced for this shader.
	Source string

	spirv []uint32
}

// Compile translates the WGSL source to SPIR-V and caches the result.
// Calling Compile again after a Source change recompiles.
func (s *ShaderData) Compile() error {
	spirvBytes, err := naga.Compile(s.Source)
	if err != nil {
		s.spirv = nil
		return fmt.Errorf("objectdata: compile shader: %w", err)
	}
	s.spirv = spirvWords(spirvBytes)
	return nil
}

// Compiled reports whether a compiled form is cached.
func (s *ShaderData) Compiled() bool {
	return len(s.spirv) > 0
}

// Words returns the compiled SPIR-V, or nil before a successful Compile.
func (s *ShaderData) Words() []uint32 {
	return s.spirv
}

// spirvWords converts SPIR-V bytes to 32-bit words.
// SPIR-V is little-endian 32-bit words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}
