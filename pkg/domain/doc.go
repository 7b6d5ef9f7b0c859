// Package domain contains the core domain types of the application: the
// clinical input profile, the computed risk result and the demographic
// subgroup enumeration of the pooled cohort equations. These types carry no
// infrastructure concerns so they can be shared across packages.
package domain
