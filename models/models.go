// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package models defines decoders and encoders for a set of concrete record
// types, written against the jgen runtime in the shape a code generator
// emits: one decoder variable, one entry point, and one encoder per type.
package models

import "github.com/creachadair/jgen"

// InvitationYes is the "yes" member of an Invitation.
type InvitationYes struct {
	No string `json:"no"`
}

// InvitationYesDecoder decodes an InvitationYes.
var InvitationYesDecoder = jgen.Object("invitation.yes",
	jgen.Field("no", jgen.String, func(v *InvitationYes) *string { return &v.No }),
)

// DecodeInvitationYes decodes a complete InvitationYes from input.
func DecodeInvitationYes(input []byte, opts *jgen.Options) (InvitationYes, error) {
	return jgen.Decode(input, InvitationYesDecoder, opts)
}

// AppendJSON appends the JSON encoding of v to dst.
func (v InvitationYes) AppendJSON(dst []byte) []byte {
	dst = append(dst, `{"no":`...)
	dst = jgen.AppendString(dst, v.No)
	return append(dst, '}')
}

// Invitation is an invitation with a list of invitee names.
type Invitation struct {
	Yes   InvitationYes `json:"yes"`
	Names []string      `json:"names"`
}

// InvitationDecoder decodes an Invitation.
var InvitationDecoder = jgen.Object("invitation",
	jgen.Field("yes", InvitationYesDecoder, func(v *Invitation) *InvitationYes { return &v.Yes }),
	jgen.Field("names", jgen.Array("invitation.names", jgen.String),
		func(v *Invitation) *[]string { return &v.Names }),
)

// DecodeInvitation decodes a complete Invitation from input.
func DecodeInvitation(input []byte, opts *jgen.Options) (Invitation, error) {
	return jgen.Decode(input, InvitationDecoder, opts)
}

// AppendJSON appends the JSON encoding of v to dst.
func (v Invitation) AppendJSON(dst []byte) []byte {
	dst = append(dst, `{"yes":`...)
	dst = v.Yes.AppendJSON(dst)
	dst = append(dst, `,"names":`...)
	dst = jgen.AppendArray(dst, v.Names, jgen.AppendString)
	return append(dst, '}')
}

// ReceiptsOneResProducts is a single product line of a receipt.
type ReceiptsOneResProducts struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	PriceDKKCent int64  `json:"price_dkk_cent"`
	Amount       int64  `json:"amount"`
}

// ReceiptsOneResProductsDecoder decodes a ReceiptsOneResProducts.
var ReceiptsOneResProductsDecoder = jgen.Object("receipts_one_res.products",
	jgen.Field("product_id", jgen.Int, func(v *ReceiptsOneResProducts) *int64 { return &v.ProductID }),
	jgen.Field("name", jgen.String, func(v *ReceiptsOneResProducts) *string { return &v.Name }),
	jgen.Field("price_dkk_cent", jgen.Int, func(v *ReceiptsOneResProducts) *int64 { return &v.PriceDKKCent }),
	jgen.Field("amount", jgen.Int, func(v *ReceiptsOneResProducts) *int64 { return &v.Amount }),
)

// DecodeReceiptsOneResProducts decodes a complete ReceiptsOneResProducts
// from input.
func DecodeReceiptsOneResProducts(input []byte, opts *jgen.Options) (ReceiptsOneResProducts, error) {
	return jgen.Decode(input, ReceiptsOneResProductsDecoder, opts)
}

// AppendJSON appends the JSON encoding of v to dst.
func (v ReceiptsOneResProducts) AppendJSON(dst []byte) []byte {
	dst = append(dst, `{"product_id":`...)
	dst = jgen.AppendInt(dst, v.ProductID)
	dst = append(dst, `,"name":`...)
	dst = jgen.AppendString(dst, v.Name)
	dst = append(dst, `,"price_dkk_cent":`...)
	dst = jgen.AppendInt(dst, v.PriceDKKCent)
	dst = append(dst, `,"amount":`...)
	dst = jgen.AppendInt(dst, v.Amount)
	return append(dst, '}')
}

// ReceiptsOneRes is a receipt with its product lines.
type ReceiptsOneRes struct {
	ReceiptID int64                    `json:"receipt_id"`
	Timestamp string                   `json:"timestamp"`
	Products  []ReceiptsOneResProducts `json:"products"`
}

// ReceiptsOneResDecoder decodes a ReceiptsOneRes.
var ReceiptsOneResDecoder = jgen.Object("receipts_one_res",
	jgen.Field("receipt_id", jgen.Int, func(v *ReceiptsOneRes) *int64 { return &v.ReceiptID }),
	jgen.Field("timestamp", jgen.String, func(v *ReceiptsOneRes) *string { return &v.Timestamp }),
	jgen.Field("products", jgen.Array("receipts_one_res.products", ReceiptsOneResProductsDecoder),
		func(v *ReceiptsOneRes) *[]ReceiptsOneResProducts { return &v.Products }),
)

// DecodeReceiptsOneRes decodes a complete ReceiptsOneRes from input.
func DecodeReceiptsOneRes(input []byte, opts *jgen.Options) (ReceiptsOneRes, error) {
	return jgen.Decode(input, ReceiptsOneResDecoder, opts)
}

// AppendJSON appends the JSON encoding of v to dst.
func (v ReceiptsOneRes) AppendJSON(dst []byte) []byte {
	dst = append(dst, `{"receipt_id":`...)
	dst = jgen.AppendInt(dst, v.ReceiptID)
	dst = append(dst, `,"timestamp":`...)
	dst = jgen.AppendString(dst, v.Timestamp)
	dst = append(dst, `,"products":`...)
	dst = jgen.AppendArray(dst, v.Products, func(dst []byte, p ReceiptsOneResProducts) []byte {
		return p.AppendJSON(dst)
	})
	return append(dst, '}')
}
