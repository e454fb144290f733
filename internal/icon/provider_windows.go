//go:build windows

package icon

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procExtractIconW       = shell32.NewProc("ExtractIconW")
	procGetIconInfo        = user32.NewProc("GetIconInfo")
	procDestroyIcon        = user32.NewProc("DestroyIcon")
	procGetObjectW         = gdi32.NewProc("GetObjectW")
	procGetDIBits          = gdi32.NewProc("GetDIBits")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
)

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

type gdiBitmap struct {
	Type       int32
	Width      int32
	Height     int32
	WidthBytes int32
	Planes     uint16
	BitsPixel  uint16
	Bits       uintptr
}

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [3]uint32
}

const (
	biRGB         = 0
	dibRGBColors  = 0
	defaultDimens = 32
)

type nativeProvider struct{}

func newProvider() Provider {
	return nativeProvider{}
}

// Icon extracts the default icon (index 0) of the target and reads its color
// and mask bitmaps as 32bpp top-down DIBs. Every handle acquired along the
// way is released by a deferred call, so early failure paths leak nothing.
func (nativeProvider) Icon(targetPath string) (*Raster, error) {
	pathPtr, err := windows.UTF16PtrFromString(targetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: encode path: %v", ErrExtraction, err)
	}

	hicon, _, _ := procExtractIconW.Call(0, uintptr(unsafe.Pointer(pathPtr)), 0)
	// ExtractIconW returns NULL when the file does not exist and 1 when it
	// exists but carries no icon resource.
	if hicon == 0 || hicon == 1 {
		return nil, ErrNoIcon
	}
	defer procDestroyIcon.Call(hicon)

	var info iconInfo
	if ret, _, _ := procGetIconInfo.Call(hicon, uintptr(unsafe.Pointer(&info))); ret == 0 {
		return nil, fmt.Errorf("%w: query icon info", ErrExtraction)
	}
	if info.HbmColor != 0 {
		defer procDeleteObject.Call(uintptr(info.HbmColor))
	}
	if info.HbmMask != 0 {
		defer procDeleteObject.Call(uintptr(info.HbmMask))
	}

	var bm gdiBitmap
	procGetObjectW.Call(uintptr(info.HbmColor), unsafe.Sizeof(bm), uintptr(unsafe.Pointer(&bm)))

	width := int(abs32(bm.Width))
	height := int(abs32(bm.Height))
	if width == 0 || height == 0 {
		width, height = defaultDimens, defaultDimens
	}

	hdc, _, _ := procCreateCompatibleDC.Call(0)
	if hdc == 0 {
		return nil, fmt.Errorf("%w: create device context", ErrExtraction)
	}
	defer procDeleteDC.Call(hdc)

	color, err := readDIBits(hdc, uintptr(info.HbmColor), width, height)
	if err != nil {
		return nil, err
	}
	// Mask read is best-effort: a failed read leaves nil, which the raster
	// pipeline treats as fully opaque.
	mask, _ := readDIBits(hdc, uintptr(info.HbmMask), width, height)

	return &Raster{Width: width, Height: height, Color: color, Mask: mask}, nil
}

// readDIBits copies a bitmap's pixels as a 32bpp top-down DIB.
func readDIBits(hdc, hbm uintptr, width, height int) ([]byte, error) {
	info := bitmapInfo{
		Header: bitmapInfoHeader{
			Size:        uint32(unsafe.Sizeof(bitmapInfoHeader{})),
			Width:       int32(width),
			Height:      -int32(height), // negative height requests top-down rows
			Planes:      1,
			BitCount:    32,
			Compression: biRGB,
		},
	}
	buf := make([]byte, width*height*4)
	ret, _, _ := procGetDIBits.Call(
		hdc,
		hbm,
		0,
		uintptr(height),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&info)),
		dibRGBColors,
	)
	if ret == 0 {
		return nil, fmt.Errorf("%w: read bitmap pixel data", ErrExtraction)
	}
	return buf, nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
