package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/pptxhtml/bullet"
)

// MaxLevels is the number of paragraph outline levels.
const MaxLevels = 9

// DefaultStartAt is the first number of an auto-numbered list.
const DefaultStartAt = 1

// BulletStyle is the list kind of a paragraph.
type BulletStyle int

const (
	NoBullets BulletStyle = iota
	Bullets
	AutoNumbered
)

func (bs BulletStyle) String() string {
	switch bs {
	case Bullets:
		return "Bullets"
	case AutoNumbered:
		return "AutoNumbered"
	default:
		return "NoBullets"
	}
}

// ParseBulletStyle parses a bullet style name as used in configuration files.
func ParseBulletStyle(s string) (BulletStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "nobullets", "no_bullets":
		return NoBullets, nil
	case "bullets", "bullet":
		return Bullets, nil
	case "autonumbered", "auto_numbered", "numbered":
		return AutoNumbered, nil
	default:
		return NoBullets, fmt.Errorf("unknown bullet style %q", s)
	}
}

// Alignment is the horizontal alignment of a paragraph.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParagraphProperty is the resolved property block of one paragraph.
type ParagraphProperty struct {
	Level         int // 0-based, below MaxLevels
	BulletStyle   BulletStyle
	BulletType    bullet.Type
	BulletStartAt int // meaningful only when BulletStyle is AutoNumbered
	Alignment     Alignment
}

// NewParagraphProperty returns the property of an unspecified block at the
// given level.
func NewParagraphProperty(level int) *ParagraphProperty {
	return &ParagraphProperty{
		Level:         ClampLevel(level),
		BulletStyle:   NoBullets,
		BulletType:    bullet.ArabicPlain,
		BulletStartAt: DefaultStartAt,
		Alignment:     AlignLeft,
	}
}

// ClampLevel limits a level to the valid range.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= MaxLevels {
		return MaxLevels - 1
	}
	return level
}

// SameList reports whether a paragraph with property q continues the list
// opened by p.
func (p *ParagraphProperty) SameList(q *ParagraphProperty) bool {
	if p == nil || q == nil || p.BulletStyle != q.BulletStyle {
		return false
	}
	switch p.BulletStyle {
	case Bullets:
		return true
	case AutoNumbered:
		return p.BulletStartAt == q.BulletStartAt
	default:
		return false
	}
}
