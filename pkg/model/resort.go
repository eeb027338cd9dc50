package model

// Resort documents are free-form by design: properties arrive from
// listing partners with wildly different shapes, so the store accepts
// whatever the partner sends and the catalog is served back as-is.
type Resort map[string]any
