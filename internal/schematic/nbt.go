package schematic

import (
	"bytes"
	"encoding/binary"
)

// NBT tag ids, limited to the subset the schematic format uses.
const (
	tagEnd       byte = 0
	tagByte      byte = 1
	tagShort     byte = 2
	tagInt       byte = 3
	tagByteArray byte = 7
	tagString    byte = 8
	tagList      byte = 9
	tagCompound  byte = 10
	tagIntArray  byte = 11
)

// nbtWriter serializes named binary tags into a buffer, big-endian
// throughout. It is write-only: the schematic encoder never needs to
// read NBT back, so there is no parser counterpart.
type nbtWriter struct {
	buf bytes.Buffer
}

func (w *nbtWriter) bytes() []byte { return w.buf.Bytes() }

// header writes a tag id and its name. Every named tag starts here;
// tags inside a list carry no header.
func (w *nbtWriter) header(id byte, name string) {
	w.buf.WriteByte(id)
	w.rawString(name)
}

func (w *nbtWriter) rawString(s string) {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(s)))
	w.buf.Write(n[:])
	w.buf.WriteString(s)
}

func (w *nbtWriter) rawInt16(v int16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	w.buf.Write(b[:])
}

func (w *nbtWriter) rawInt32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	w.buf.Write(b[:])
}

func (w *nbtWriter) byteTag(name string, v byte) {
	w.header(tagByte, name)
	w.buf.WriteByte(v)
}

func (w *nbtWriter) shortTag(name string, v int16) {
	w.header(tagShort, name)
	w.rawInt16(v)
}

func (w *nbtWriter) intTag(name string, v int32) {
	w.header(tagInt, name)
	w.rawInt32(v)
}

func (w *nbtWriter) stringTag(name, s string) {
	w.header(tagString, name)
	w.rawString(s)
}

func (w *nbtWriter) byteArrayTag(name string, b []byte) {
	w.header(tagByteArray, name)
	w.rawInt32(int32(len(b)))
	w.buf.Write(b)
}

func (w *nbtWriter) intArrayTag(name string, vs []int32) {
	w.header(tagIntArray, name)
	w.rawInt32(int32(len(vs)))
	for _, v := range vs {
		w.rawInt32(v)
	}
}

// beginCompound opens a named compound; the caller closes it with end.
func (w *nbtWriter) beginCompound(name string) {
	w.header(tagCompound, name)
}

// beginList opens a named list of n elements of one tag type. List
// elements follow with bare payloads; compound elements each close with
// their own end.
func (w *nbtWriter) beginList(name string, elem byte, n int) {
	w.header(tagList, name)
	w.buf.WriteByte(elem)
	w.rawInt32(int32(n))
}

// end closes the innermost open compound.
func (w *nbtWriter) end() {
	w.buf.WriteByte(tagEnd)
}
