package constant

// Phrases the episode source site prints inside its episode sections.
const (
	// NoInfoSentinel marks a section the site has nothing to say about.
	NoInfoSentinel = "Sorry, no info about the next episode"

	// EndedSentinel marks a show the site lists as finished.
	EndedSentinel = "Canceled/Ended"

	// IndirectStatusMarker introduces a quoted third-party statement about the show.
	IndirectStatusMarker = "However, our last information about it is this:"
)

// Element ids of the episode sections on a show page.
const (
	PreviousEpisodeID = "previous_episode"
	NextEpisodeID     = "next_episode"
)
