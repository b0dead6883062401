package favicon

// IsBetter reports whether a candidate of size next should replace an icon
// whose source was current, for a tab rendering icons at ideal×ideal.
// Rules are ordered; the first one that applies decides.
func IsBetter(current, next Size, ideal int) bool {
	if next.Width == ideal && next.Height == ideal {
		return true
	}

	// Square icons render without letterboxing.
	if !current.Square() && next.Square() {
		return true
	}
	if current.Square() && !next.Square() {
		return false
	}

	// Stop once the held icon is large enough.
	if current.AtLeast(ideal) {
		return false
	}

	// Grow one axis without shrinking the other.
	return (next.Width > current.Width && next.Height >= current.Height) ||
		(next.Width >= current.Width && next.Height > current.Height)
}

// ShouldKeep decides whether c replaces held. Nothing held, or a held icon that
// belongs to another page URL, always yields to the candidate.
func ShouldKeep(held *Held, c Candidate, ideal int) bool {
	if held == nil || held.Image == nil {
		return true
	}
	if c.PageURL != held.SourceURL {
		return true
	}
	return IsBetter(held.Source, c.Size, ideal)
}
