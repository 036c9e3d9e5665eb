// Package sink renders a composed drawing to its output encodings.
//
//   - SVG ([RenderSVG]): the primary format; primitive classes are resolved
//     through a [styles.Theme].
//   - JSON ([RenderJSON]): the raw primitive list plus the spacing summary,
//     for external renderers.
//   - PNG ([RenderPNG]): rasterized from the SVG via rsvg-convert.
//
// All sinks are deterministic: the same drawing yields identical bytes.
package sink
