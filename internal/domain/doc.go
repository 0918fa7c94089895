// Package domain contains the core entities of the parks service, National
// parks and the trails inside them, together with their validation rules.
// It is independent of any storage or delivery mechanism.
package domain
