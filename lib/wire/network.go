// Copyright 2026 The LBS Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

const (
	tagIPv6 = 0
	tagIPv4 = 1
)

// WriteIPv4 encodes a 4-byte IPv4 address. The address's network-order
// octets are reinterpreted as a big-endian u32 and that u32 is then
// written little-endian, so the bytes on the wire are the address's
// octets in reverse order.
func (w *Writer) WriteIPv4(addr netip.Addr) error {
	if !addr.Is4() {
		return &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("%s is not an IPv4 address", addr)}
	}
	octets := addr.As4()
	return w.WriteUint32(binary.BigEndian.Uint32(octets[:]))
}

func (r *Reader) ReadIPv4() (netip.Addr, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return netip.Addr{}, err
	}
	var octets [4]byte
	binary.BigEndian.PutUint32(octets[:], v)
	return netip.AddrFrom4(octets), nil
}

// WriteIPv6 encodes a 16-byte IPv6 address, its sixteen network-order
// octets reversed (the same big-endian-value/little-endian-wire
// relationship as WriteIPv4, generalized to 128 bits).
func (w *Writer) WriteIPv6(addr netip.Addr) error {
	if addr.Is4() {
		addr = netip.AddrFrom16(addr.As16())
	}
	octets := addr.As16()
	var out [16]byte
	for i := range out {
		out[i] = octets[15-i]
	}
	return w.writeRaw(out[:])
}

func (r *Reader) ReadIPv6() (netip.Addr, error) {
	buf, err := r.readRaw(16)
	if err != nil {
		return netip.Addr{}, err
	}
	var octets [16]byte
	for i := range octets {
		octets[i] = buf[15-i]
	}
	return netip.AddrFrom16(octets), nil
}

// WriteIP encodes a tagged union of IPv4/IPv6: a one-byte tag (1 for
// v4, 0 for v6) followed by the address's fixed-width body.
func (w *Writer) WriteIP(addr netip.Addr) error {
	if addr.Is4() || addr.Is4In6() {
		if err := w.WriteUint8(tagIPv4); err != nil {
			return err
		}
		return w.WriteIPv4(addr.Unmap())
	}
	if err := w.WriteUint8(tagIPv6); err != nil {
		return err
	}
	return w.WriteIPv6(addr)
}

func (r *Reader) ReadIP() (netip.Addr, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return netip.Addr{}, err
	}
	switch tag {
	case tagIPv4:
		return r.ReadIPv4()
	case tagIPv6:
		return r.ReadIPv6()
	default:
		return netip.Addr{}, &Error{Kind: KindInvalidScalar, Err: fmt.Errorf("ip address tag %d is neither 0 nor 1", tag)}
	}
}

// IsDefaultIP reports whether addr is the unspecified address
// (0.0.0.0 or ::), the natural default for an IP address field.
func IsDefaultIP(addr netip.Addr) bool { return !addr.IsValid() || addr.IsUnspecified() }

// WriteIPPrefix encodes an IP network as a tagged address (as WriteIP)
// followed by a one-byte prefix length.
func (w *Writer) WriteIPPrefix(p netip.Prefix) error {
	if err := w.WriteIP(p.Addr()); err != nil {
		return err
	}
	return w.WriteUint8(uint8(p.Bits()))
}

func (r *Reader) ReadIPPrefix() (netip.Prefix, error) {
	addr, err := r.ReadIP()
	if err != nil {
		return netip.Prefix{}, err
	}
	bits, err := r.ReadUint8()
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, int(bits)), nil
}

// IsDefaultIPPrefix reports whether p is unset or has the unspecified
// address.
func IsDefaultIPPrefix(p netip.Prefix) bool {
	return !p.IsValid() || p.Addr().IsUnspecified()
}
