// Package scales resolves the positional scales of cartesian charts.
//
// It uses gonum.org/v1/plot for ticks and github.com/aclements/go-moremath
// for the continuous mappings.
//
// Axes and roles
//
// A chart has up to four axes: top, right, bottom and left. Of the left
// and right axis the left one is the main vertical axis unless the right
// one is flagged main; likewise bottom beats top. Of the two main axes one
// becomes the domain axis and the other the range axis:
//   1. A Labels or Time horizontal axis is the domain axis.
//   2. Otherwise a Labels or Time vertical axis is the domain axis.
//   3. Otherwise the horizontal axis is the domain axis.
// The chart is Vertical iff the domain axis is at the bottom and the range
// axis on the left.
//
// Scales
//
// Package scales knows about the following scale types:
//   - Linear  Continuous, linear mapping.
//   - Log     Continuous, logarithmic mapping. The domain must not
//             contain zero.
//   - Labels  Discrete: the range is split into equal bands, one per
//             category, in order of first appearance.
//   - Time    Continuous, linear in time.
//
// The domain of a scale is either configured explicitly or inferred from
// the display data: the distinct labels, or the extent of the values
// (optionally of the stacked sums and including 0) padded by the padding
// ratio. Padding never pushes an edge across zero. Time domains may
// instead be widened by whole calendar units.
//
// All resolved state is recomputed by Service.Update.
package scales
