package spacex

// NoLink is returned by WikipediaLink for names missing from the table.
const NoLink = "#"

var wikipediaLinks = map[string]string{
	"VAFB SLC 3W":     "https://en.wikipedia.org/wiki/Vandenberg_Space_Launch_Complex_3",
	"CCSFS SLC 40":    "https://en.wikipedia.org/wiki/Cape_Canaveral_Space_Launch_Complex_40",
	"STLS":            "https://en.wikipedia.org/wiki/SpaceX_Starbase",
	"Kwajalein Atoll": "https://en.wikipedia.org/wiki/Omelek_Island",
	"VAFB SLC 4E":     "https://en.wikipedia.org/wiki/Vandenberg_Space_Launch_Complex_4",
	"KSC LC 39A":      "https://en.wikipedia.org/wiki/Kennedy_Space_Center_Launch_Complex_39A",
}

// WikipediaLink resolves a launchpad name to its article by exact match.
func WikipediaLink(name string) string {
	if link, ok := wikipediaLinks[name]; ok {
		return link
	}
	return NoLink
}
