// Package model provides the document model for a parsed presentation.
//
// The model is built in two phases. Phase one reads the presentation part
// and produces an [Outline]: ordered lists of [PartRef] values naming each
// master and slide part. Phase two builds each referenced part into a fully
// populated [Master] or [Slide]. A [Presentation] holds only built values.
//
// # Structure
//
//	Presentation
//	├── Metadata
//	├── Masters []*Master ── Shapes
//	└── Slides  []*Slide  ── Shapes
//	                          └── TextBodies
//	                              └── Paragraphs (ParagraphProperty + Runs)
//
// # Paragraph Properties
//
// [ParagraphProperty] carries the bullet style, bullet type, start value,
// level and alignment of one paragraph. An unspecified property block
// constructs with [NoBullets]; [BulletStartAt] is only meaningful when the
// style is [AutoNumbered].
//
// # Geometry
//
// Shape positions and extents are kept in EMUs (English Metric Units,
// 914400 per inch) as [Point] and [Extent].
package model
