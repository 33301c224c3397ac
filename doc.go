// Package base85 implements the Base85 encoding described in RFC 1924.
//
// Several Base85 variants exist. The most common one, ascii85, is used by Adobe
// products and is not implemented here. RFC 1924 uses an alphabet that needs no
// escaping when embedded in source code, shell scripts or JSON strings:
//
//	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~
//
// Every 4 input bytes are written as 5 characters. A trailing group of n bytes
// (n < 4) is written as n+1 characters, so no padding characters are ever emitted.
// Encoded data is 25% larger than the input, compared to 33% for base64.
//
// While decoding, ASCII whitespace (space, tab, carriage return and line feed) is
// ignored, so encoded text may be wrapped freely.
//
// Both Encode and Decode work on in-memory buffers; they are safe for concurrent use.
//
// https://datatracker.ietf.org/doc/html/rfc1924
package base85
