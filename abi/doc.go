// Package abi describes the C-ABI surface of the device library: the kinds
// of values its entry points take, their signatures, and the packed records
// passed by reference.
//
// Every record is encoded explicitly, little-endian, in declaration order and
// without padding. The vendor headers are compiled with one-byte packing, so
// Go's natural struct layout cannot be handed to the library directly
// (voxie_wind_t places a double at byte 476, for example). Records that hold
// pointers (voxie_frame_t, tiletype) are encoded at the pointer width of the
// backend that will receive them.
//
// Sizes:
//
//	Xbox        16 bytes   voxie_xbox_t
//	Inputs      20 bytes   voxie_inputs_t
//	Nav         28 bytes   voxie_nav_t
//	Point3      12 bytes   point3d
//	Pol         16 bytes   pol_t
//	Poltex      24 bytes   poltex_t
//	Display     96 bytes   voxie_disp_t
//	WindConfig 584 bytes   voxie_wind_t
//	Tile        4 words    tiletype
//	Frame       7 words + 56 bytes   voxie_frame_t (112 at 8-byte pointers)
//
// Pointer arguments are passed as *Buffer. A Buffer's Data is caller memory
// the device may write into; Refs describe nested pointers inside Data (the
// pixel pointer of a tiletype) that the backend patches before the call.
package abi
