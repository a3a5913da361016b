package ironsegment

import (
	"errors"
	"testing"
)

func TestNewImageID(t *testing.T) {
	if _, err := NewImageID(0); !errors.Is(err, ErrIdentifierOutOfRange) {
		t.Errorf("NewImageID(0) err = %v, want ErrIdentifierOutOfRange", err)
	}
	if _, err := NewImageID(1); err != nil {
		t.Errorf("NewImageID(1) err = %v, want nil", err)
	}
	if _, err := NewImageID(MaxIdentifier); err != nil {
		t.Errorf("NewImageID(max) err = %v, want nil", err)
	}
}

func TestNewObjectID(t *testing.T) {
	if _, err := NewObjectID(0); !errors.Is(err, ErrIdentifierOutOfRange) {
		t.Errorf("NewObjectID(0) err = %v, want ErrIdentifierOutOfRange", err)
	}
	if _, err := NewObjectID(1); err != nil {
		t.Errorf("NewObjectID(1) err = %v, want nil", err)
	}
	if _, err := NewObjectID(MaxIdentifier); err != nil {
		t.Errorf("NewObjectID(max) err = %v, want nil", err)
	}
}
