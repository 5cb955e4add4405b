package gif

import (
	"encoding/binary"
	"fmt"
)

// ExtensionLabel is the byte following the extension introducer.
type ExtensionLabel byte

// Extensions.
const (
	LabelPlainText      ExtensionLabel = 0x01 // Plain Text
	LabelGraphicControl ExtensionLabel = 0xF9 // Graphic Control
	LabelComment        ExtensionLabel = 0xFE // Comment
	LabelApplication    ExtensionLabel = 0xFF // Application
)

var canonicalOrder = [...]ExtensionLabel{
	LabelGraphicControl,
	LabelComment,
	LabelPlainText,
	LabelApplication,
}

func (l ExtensionLabel) String() string {
	switch l {
	case LabelPlainText:
		return "plain text"
	case LabelGraphicControl:
		return "graphic control"
	case LabelComment:
		return "comment"
	case LabelApplication:
		return "application"
	}
	return fmt.Sprintf("extension 0x%.2x", byte(l))
}

// Block sizes written by conforming encoders.
const (
	GraphicControlBlockSize = 0x04
	PlainTextBlockSize      = 0x0C
	ApplicationBlockSize    = 0x0B
)

type GraphicControl struct {
	BlockSize        byte
	Fields           ControlFields
	Delay            uint16 // in hundredths of a second
	TransparentIndex byte
	Terminator       byte
}

// Comment is a comment extension. BlockSize is the byte following the label;
// it is kept as read and does not bound Data.
type Comment struct {
	BlockSize byte
	Data      []SubBlock
}

type PlainText struct {
	BlockSize       byte
	GridLeft        uint16 // X position of text grid in pixels
	GridTop         uint16 // Y position of the text grid in pixels
	GridWidth       uint16 // width of text grid in pixels
	GridHeight      uint16 // height of text grid in pixels
	CellWidth       byte   // width of grid cell in pixels
	CellHeight      byte   // height of grid cell in pixels
	ForegroundIndex byte   // text foreground color index value
	BackgroundIndex byte   // text background color index value
	Data            []SubBlock
}

type Application struct {
	BlockSize  byte
	Identifier [8]byte // application identifier
	AuthCode   [3]byte // application authentication code
	Data       []SubBlock
}

func readGraphicControl(r *reader) (GraphicControl, error) {
	var buf [6]byte
	if err := r.readFull(buf[:], "graphic control extension"); err != nil {
		return GraphicControl{}, err
	}
	return GraphicControl{
		BlockSize:        buf[0],
		Fields:           DecodeControlFields(buf[1]),
		Delay:            binary.LittleEndian.Uint16(buf[2:4]),
		TransparentIndex: buf[4],
		Terminator:       buf[5],
	}, nil
}

func readComment(r *reader) (Comment, error) {
	size, err := r.readByte("comment block size")
	if err != nil {
		return Comment{}, err
	}

	data, err := readSubBlocks(r, "comment data")
	if err != nil {
		return Comment{}, err
	}
	return Comment{BlockSize: size, Data: data}, nil
}

func readPlainText(r *reader) (PlainText, error) {
	var buf [13]byte
	if err := r.readFull(buf[:], "plain text extension"); err != nil {
		return PlainText{}, err
	}

	data, err := readSubBlocks(r, "plain text data")
	if err != nil {
		return PlainText{}, err
	}
	return PlainText{
		BlockSize:       buf[0],
		GridLeft:        binary.LittleEndian.Uint16(buf[1:3]),
		GridTop:         binary.LittleEndian.Uint16(buf[3:5]),
		GridWidth:       binary.LittleEndian.Uint16(buf[5:7]),
		GridHeight:      binary.LittleEndian.Uint16(buf[7:9]),
		CellWidth:       buf[9],
		CellHeight:      buf[10],
		ForegroundIndex: buf[11],
		BackgroundIndex: buf[12],
		Data:            data,
	}, nil
}

func readApplication(r *reader) (Application, error) {
	var buf [12]byte
	if err := r.readFull(buf[:], "application extension"); err != nil {
		return Application{}, err
	}

	data, err := readSubBlocks(r, "application data")
	if err != nil {
		return Application{}, err
	}

	app := Application{BlockSize: buf[0], Data: data}
	copy(app.Identifier[:], buf[1:9])
	copy(app.AuthCode[:], buf[9:12])
	return app, nil
}

func (e GraphicControl) appendTo(b []byte) []byte {
	b = append(b, sExtension, byte(LabelGraphicControl), e.BlockSize, e.Fields.Byte())
	b = binary.LittleEndian.AppendUint16(b, e.Delay)
	return append(b, e.TransparentIndex, e.Terminator)
}

func (e Comment) appendTo(b []byte) []byte {
	b = append(b, sExtension, byte(LabelComment), e.BlockSize)
	return appendSubBlocks(b, e.Data)
}

func (e PlainText) appendTo(b []byte) []byte {
	b = append(b, sExtension, byte(LabelPlainText), e.BlockSize)
	b = binary.LittleEndian.AppendUint16(b, e.GridLeft)
	b = binary.LittleEndian.AppendUint16(b, e.GridTop)
	b = binary.LittleEndian.AppendUint16(b, e.GridWidth)
	b = binary.LittleEndian.AppendUint16(b, e.GridHeight)
	b = append(b, e.CellWidth, e.CellHeight, e.ForegroundIndex, e.BackgroundIndex)
	return appendSubBlocks(b, e.Data)
}

func (e Application) appendTo(b []byte) []byte {
	b = append(b, sExtension, byte(LabelApplication), e.BlockSize)
	b = append(b, e.Identifier[:]...)
	b = append(b, e.AuthCode[:]...)
	return appendSubBlocks(b, e.Data)
}
