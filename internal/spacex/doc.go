// Package spacex is the data source adapter for the SpaceX launchpad API.
//
// Client performs a single GET of the launchpad collection and decodes it into
// []Launchpad. Images and Launches are optional in the payload and stay nil
// when absent. WikipediaLink resolves a launchpad name to an article through a
// small fixed table, returning NoLink ("#") for anything it does not know.
//
// Errors are wrapped with the step that failed ("create request", "execute
// request", "decode response") or report the HTTP status for responses >= 400.
package spacex
