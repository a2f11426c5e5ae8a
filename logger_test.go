// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jgen_test

import (
	"testing"

	"github.com/creachadair/jgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecodeLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	jgen.SetLogger(zap.New(core))
	t.Cleanup(func() { jgen.SetLogger(nil) })

	if _, err := jgen.Decode([]byte(`[1,2]`), jgen.Array("ints", jgen.Int), nil); err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	if _, err := jgen.Decode([]byte(`{"bogus":1}`), invitationDecoder, nil); err == nil {
		t.Fatal("Decode: got nil, want error")
	}

	ok := logs.FilterMessage("decoded").All()
	if len(ok) != 1 {
		t.Fatalf("Got %d success entries, want 1", len(ok))
	}
	if got := ok[0].ContextMap()["committed"]; got != int64(2) {
		t.Errorf("committed: got %v, want 2", got)
	}

	bad := logs.FilterMessage("decode failed").All()
	if len(bad) != 1 {
		t.Fatalf("Got %d failure entries, want 1", len(bad))
	}
	fields := bad[0].ContextMap()
	if got := fields["decoder"]; got != "invitation" {
		t.Errorf("decoder: got %v, want invitation", got)
	}
	if got := fields["kind"]; got != jgen.UnknownKey.String() {
		t.Errorf("kind: got %v, want %v", got, jgen.UnknownKey)
	}
}
