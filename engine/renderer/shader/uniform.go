package shader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

var (
	// ErrUnknownUniform is returned when a setter names a field the block does not declare.
	ErrUnknownUniform = errors.New("unknown uniform")

	// ErrUniformType is returned when a setter's value type does not match the declared field type.
	ErrUniformType = errors.New("uniform type mismatch")
)

// UniformType is the host-side type of a uniform field.
type UniformType int

const (
	// UniformOpaque is a field that is laid out but cannot be set through UniformSetter (e.g. vec4, arrays).
	UniformOpaque UniformType = iota
	// UniformMat4 is a mat4x4<f32>.
	UniformMat4
	// UniformVec3 is a vec3<f32>.
	UniformVec3
	// UniformFloat is an f32.
	UniformFloat
	// UniformInt is an i32.
	UniformInt
)

func (t UniformType) String() string {
	switch t {
	case UniformMat4:
		return "mat4x4<f32>"
	case UniformVec3:
		return "vec3<f32>"
	case UniformFloat:
		return "f32"
	case UniformInt:
		return "i32"
	default:
		return "opaque"
	}
}

// wgslType returns the WGSL spelling used to compute the field's layout.
func (t UniformType) wgslType() string {
	return t.String()
}

// uniformTypeOf maps a WGSL type name to its settable UniformType.
func uniformTypeOf(typeName string) UniformType {
	switch typeName {
	case "mat4x4<f32>", "mat4x4f":
		return UniformMat4
	case "vec3<f32>", "vec3f":
		return UniformVec3
	case "f32":
		return UniformFloat
	case "i32":
		return UniformInt
	default:
		return UniformOpaque
	}
}

// UniformField declares one named member of a UniformBlock.
type UniformField struct {
	Name string
	Type UniformType
}

// UniformSetter is the boundary the render loop writes per-frame values through.
// Each setter returns an error wrapping ErrUnknownUniform or ErrUniformType when the name or
// value type does not match the declaration.
type UniformSetter interface {
	// SetMat4 writes a column-major 4x4 matrix.
	SetMat4(name string, m common.Mat4) error

	// SetVec3 writes a 3-component vector.
	SetVec3(name string, v common.Vec3) error

	// SetFloat writes a scalar.
	SetFloat(name string, f float32) error

	// SetInt writes a signed integer.
	SetInt(name string, i int32) error
}

// UniformBlock is a UniformSetter backed by a byte buffer laid out with WGSL host-shareable rules,
// ready to upload to a uniform buffer.
type UniformBlock interface {
	UniformSetter

	// Name returns the WGSL struct name the block was built from, or the label it was given.
	//
	// Returns:
	//   - string: the block name
	Name() string

	// Size returns the buffer size in bytes, a multiple of 16.
	//
	// Returns:
	//   - int: the block size in bytes
	Size() int

	// Offset returns the byte offset of a field.
	//
	// Parameters:
	//   - name: the field name
	//
	// Returns:
	//   - int: byte offset of the field
	//   - bool: false if the field is not declared
	Offset(name string) (int, bool)

	// Bytes returns the backing buffer. The slice aliases the block; callers must not modify it.
	//
	// Returns:
	//   - []byte: the little-endian buffer contents
	Bytes() []byte

	// Dirty reports whether any setter wrote since the last ClearDirty.
	//
	// Returns:
	//   - bool: true if the buffer changed
	Dirty() bool

	// ClearDirty marks the buffer as uploaded.
	ClearDirty()
}

type uniformSlot struct {
	offset int
	typ    UniformType
}

type uniformBlock struct {
	name  string
	slots map[string]uniformSlot
	buf   []byte
	dirty bool
}

var _ UniformBlock = &uniformBlock{}

// NewUniformBlock lays out the given fields in order with WGSL uniform alignment
// (mat4x4 and vec3 align to 16 bytes, scalars to 4) and returns a zeroed block.
//
// Parameters:
//   - name: a label for the block, used in error messages
//   - fields: the members in declaration order
//
// Returns:
//   - UniformBlock: the new block
//   - error: if a field is opaque, unnamed or declared twice
func NewUniformBlock(name string, fields ...UniformField) (UniformBlock, error) {
	ps := parsedStruct{name: name}
	for _, f := range fields {
		if f.Type == UniformOpaque {
			return nil, fmt.Errorf("uniform block %s: field %q: %w", name, f.Name, ErrUniformType)
		}
		ps.fields = append(ps.fields, parsedField{name: f.Name, typeName: f.Type.wgslType(), location: -1})
	}
	return newUniformBlockFromStruct(ps, nil)
}

// NewUniformBlockFromSource builds a block from a struct declared in WGSL source, so the host
// layout always matches what the shader reads.
//
// Parameters:
//   - source: WGSL source containing the struct
//   - structName: the struct to lay out
//
// Returns:
//   - UniformBlock: the new block
//   - error: if the struct is missing or a member type cannot be resolved
func NewUniformBlockFromSource(source, structName string) (UniformBlock, error) {
	structs := parseStructBlocks(stripComments(source))
	known := computeStructSizes(structs)
	for _, ps := range structs {
		if ps.name == structName {
			return newUniformBlockFromStruct(ps, known)
		}
	}
	return nil, fmt.Errorf("uniform block %s: struct not found in source", structName)
}

func newUniformBlockFromStruct(ps parsedStruct, known map[string]wgslTypeLayout) (UniformBlock, error) {
	layouts, total, ok := structFieldLayouts(ps, known)
	if !ok {
		return nil, fmt.Errorf("uniform block %s: unresolved member type", ps.name)
	}

	b := &uniformBlock{
		name:  ps.name,
		slots: make(map[string]uniformSlot, len(layouts)),
		buf:   make([]byte, roundUpAlign(16, total.size)),
	}
	for _, l := range layouts {
		if l.name == "" {
			return nil, fmt.Errorf("uniform block %s: unnamed field", ps.name)
		}
		if _, dup := b.slots[l.name]; dup {
			return nil, fmt.Errorf("uniform block %s: duplicate field %q", ps.name, l.name)
		}
		b.slots[l.name] = uniformSlot{offset: int(l.offset), typ: uniformTypeOf(l.typeName)}
	}
	return b, nil
}

func (b *uniformBlock) Name() string {
	return b.name
}

func (b *uniformBlock) Size() int {
	return len(b.buf)
}

func (b *uniformBlock) Offset(name string) (int, bool) {
	s, ok := b.slots[name]
	return s.offset, ok
}

func (b *uniformBlock) Bytes() []byte {
	return b.buf
}

func (b *uniformBlock) Dirty() bool {
	return b.dirty
}

func (b *uniformBlock) ClearDirty() {
	b.dirty = false
}

func (b *uniformBlock) SetMat4(name string, m common.Mat4) error {
	off, err := b.slot(name, UniformMat4)
	if err != nil {
		return err
	}
	for i, v := range m {
		binary.LittleEndian.PutUint32(b.buf[off+i*4:], math.Float32bits(v))
	}
	b.dirty = true
	return nil
}

func (b *uniformBlock) SetVec3(name string, v common.Vec3) error {
	off, err := b.slot(name, UniformVec3)
	if err != nil {
		return err
	}
	for i, c := range v {
		binary.LittleEndian.PutUint32(b.buf[off+i*4:], math.Float32bits(c))
	}
	b.dirty = true
	return nil
}

func (b *uniformBlock) SetFloat(name string, f float32) error {
	off, err := b.slot(name, UniformFloat)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.buf[off:], math.Float32bits(f))
	b.dirty = true
	return nil
}

func (b *uniformBlock) SetInt(name string, i int32) error {
	off, err := b.slot(name, UniformInt)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.buf[off:], uint32(i))
	b.dirty = true
	return nil
}

// slot looks up a field and checks its declared type.
func (b *uniformBlock) slot(name string, want UniformType) (int, error) {
	s, ok := b.slots[name]
	if !ok {
		return 0, fmt.Errorf("uniform block %s: %q: %w", b.name, name, ErrUnknownUniform)
	}
	if s.typ != want {
		return 0, fmt.Errorf("uniform block %s: %q is %s, not %s: %w", b.name, name, s.typ, want, ErrUniformType)
	}
	return s.offset, nil
}
