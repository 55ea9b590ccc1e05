package wasmdev

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/voxon-runtime/abi"
	"github.com/wippyai/voxon-runtime/bind"
	"github.com/wippyai/voxon-runtime/errors"
)

func section(id byte, content ...byte) []byte {
	return append([]byte{id, byte(len(content))}, content...)
}

func export(name string, kind, idx byte) []byte {
	return append(append([]byte{byte(len(name))}, name...), kind, idx)
}

func body(code ...byte) []byte {
	return append([]byte{byte(len(code))}, code...)
}

// deviceModule is a minimal device: voxie_getversion returns 42,
// voxie_breath stores 1 at its pointer and returns 0, and voxie_keyread is
// exported with the wrong result type.
func deviceModule() []byte {
	m := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	m = append(m, section(0x01,
		0x02,
		0x60, 0x00, 0x01, 0x7e, // () -> i64
		0x60, 0x01, 0x7f, 0x01, 0x7f, // (i32) -> i32
	)...)
	m = append(m, section(0x03, 0x02, 0x00, 0x01)...)
	m = append(m, section(0x05, 0x01, 0x00, 0x01)...)

	var exports []byte
	exports = append(exports, 0x04)
	exports = append(exports, export("memory", 0x02, 0)...)
	exports = append(exports, export("voxie_getversion", 0x00, 0)...)
	exports = append(exports, export("voxie_breath", 0x00, 1)...)
	exports = append(exports, export("voxie_keyread", 0x00, 0)...)
	m = append(m, section(0x07, exports...)...)

	var code []byte
	code = append(code, 0x02)
	code = append(code, body(0x00, 0x42, 0x2a, 0x0b)...)
	code = append(code, body(0x00, 0x20, 0x00, 0x41, 0x01, 0x36, 0x02, 0x00, 0x41, 0x00, 0x0b)...)
	m = append(m, section(0x0a, code...)...)

	return m
}

func loadDevice(t *testing.T) *Device {
	t.Helper()
	dev, err := Load(context.Background(), "device.wasm", deviceModule(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		for {
			if n, _ := dev.Release(); n == 0 {
				return
			}
		}
	})
	return dev
}

func TestDevice_Calls(t *testing.T) {
	dev := loadDevice(t)
	assert.Equal(t, 4, dev.PointerSize())
	assert.Equal(t, "device.wasm", dev.Path())

	version, err := dev.Resolve("voxie_getversion", abi.Sig(abi.I64))
	require.NoError(t, err)
	v, err := version()
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	breath, err := dev.Resolve("voxie_breath", abi.Sig(abi.I32, abi.Ptr))
	require.NoError(t, err)

	buf := abi.NewBuffer(make([]byte, abi.InputsSize))
	r, err := breath(buf)
	require.NoError(t, err)
	assert.Equal(t, int32(0), r)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf.Data), "device write copied back")

	r, err = breath((*abi.Buffer)(nil))
	require.NoError(t, err)
	assert.Equal(t, int32(0), r)
}

func TestDevice_ResolveErrors(t *testing.T) {
	dev := loadDevice(t)

	_, err := dev.Resolve("voxie_nav_read", abi.Sig(abi.I32, abi.I32, abi.Ptr))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindNotFound})

	_, err = dev.Resolve("voxie_keyread", abi.Sig(abi.I32))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindTypeMismatch})

	_, err = dev.Resolve("voxie_breath", abi.Sig(abi.Void, abi.Ptr))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindTypeMismatch})

	_, err = dev.Resolve("voxie_menu_reset", abi.Sig(abi.Void, abi.Callback, abi.Ptr, abi.Ptr))
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseBind, Kind: errors.KindUnsupported})
}

func TestDevice_Bind(t *testing.T) {
	table := bind.Bind(loadDevice(t))

	assert.True(t, table.Bound(bind.Breath))
	assert.True(t, table.Bound(bind.GetVersion))
	assert.False(t, table.Bound(bind.KeyRead), "wrong export type stays unbound")
	assert.Equal(t, 2, table.Len())

	v, err := table.Call(bind.GetVersion)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}

func TestDevice_Release(t *testing.T) {
	dev, err := Load(context.Background(), "device.wasm", deviceModule(), nil)
	require.NoError(t, err)

	fn, err := dev.Resolve("voxie_getversion", abi.Sig(abi.I64))
	require.NoError(t, err)

	dev.Retain()
	n, err := dev.Release()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = dev.Release()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = fn()
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseCall, Kind: errors.KindNotLoaded})

	_, err = dev.Resolve("voxie_getversion", abi.Sig(abi.I64))
	assert.Error(t, err)

	n, err = dev.Release()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(context.Background(), "junk.wasm", []byte("not wasm"), nil)
	assert.ErrorIs(t, err, &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindLibrary})
}

func TestOpener(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voxiebox.wasm")
	require.NoError(t, os.WriteFile(path, deviceModule(), 0o644))

	open := Opener(context.Background(), &Config{MemoryLimitPages: 16})
	lib, err := open(path)
	require.NoError(t, err)
	assert.Equal(t, path, lib.Path())
	n, err := lib.Release()
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = open(filepath.Join(dir, "missing.wasm"))
	assert.Error(t, err)
}

func TestStagedSize(t *testing.T) {
	sig := abi.Sig(abi.Void, abi.Ptr, abi.CString, abi.I32)
	buf := abi.NewTile(make([]byte, 10), 1, 1).Buffer(PointerSize)
	// 16-byte tile + 10 pixel bytes (aligned to 16) + "abc\0" (aligned to 8)
	assert.Equal(t, uint32(16+16+8), stagedSize(sig, []any{buf, "abc", int32(0)}))
	assert.Equal(t, uint32(8), stagedSize(sig, []any{nil, "", int32(0)}))
}
