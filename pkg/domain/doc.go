// Package domain contains the value types shared by the converter: units and
// categories of the static catalog, conversion and formatting outcomes, the
// display selection state, and the per-client records kept by storage
// (history entries, favourites and feature requests). The types carry no
// infrastructure concerns.
package domain
