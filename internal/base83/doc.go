// Package base83 packs unsigned integers into fixed-width strings over the
// 83-symbol BlurHash alphabet.
//
// Digits are written most significant first. The alphabet order is part of
// the BlurHash wire format and must not change:
//
//	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz#$%*+,-.:;=?@[]^_{|}~
//
// Encode and Decode are inverse operations: for every v and n with
// 0 <= v < 83^n, Decode(Encode(v, n)) == v.
package base83
