//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
	tintedWindow              *glfw.Window
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaBorderColor          = 34
	dwmwaCaptionColor         = 35
)

func setWindowAttribute(window *glfw.Window, attr uintptr, value uint32) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}
	procDwmSetWindowAttribute.Call(
		uintptr(unsafe.Pointer(hwnd)),
		attr,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
}

// SetDarkTitleBar switches the caption to dark mode and remembers the window
// so the caption can follow the sky colour later.
func SetDarkTitleBar(window *glfw.Window) {
	tintedWindow = window
	setWindowAttribute(window, dwmwaUseImmersiveDarkMode, 1)
}

// SetWindowBorderColor paints the caption and border with an RGB colour in [0,1].
func SetWindowBorderColor(r, g, b float32) {
	if tintedWindow == nil {
		return
	}
	bgr := uint32(uint8(b*255))<<16 | uint32(uint8(g*255))<<8 | uint32(uint8(r*255))
	setWindowAttribute(tintedWindow, dwmwaBorderColor, bgr)
	setWindowAttribute(tintedWindow, dwmwaCaptionColor, bgr)
}
