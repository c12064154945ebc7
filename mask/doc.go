// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mask provides per-scanline coverage masks and the stack that
// composes them.
//
// A mask turns a horizontal run of pixels into 8-bit coverage values. The
// rectangle renderer registers masks on a Stack before a scanline loop,
// samples the combined coverage of every active mask with Stack.Apply and
// removes its masks again, in reverse order, before it returns.
//
// Coverage composes multiplicatively:
//
//	buf[i] = buf[i] * m1(x+i, y) / 255 * m2(x+i, y) / 255 ...
//
// so the caller seeds the buffer with 255 (or with its own alpha, as the
// shadow pass does) and reads the result back after Apply.
package mask
