package release

// Compare orders releases by air date. A dated release is greater than an
// undated one, two dated releases compare by date, and two undated releases
// are equal. It returns -1, 0 or +1.
func Compare(a, b Release) int {
	ad, aok := a.AirDate().Get()
	bd, bok := b.AirDate().Get()

	switch {
	case aok && bok:
		return ad.Compare(bd)
	case aok:
		return 1
	case bok:
		return -1
	default:
		return 0
	}
}
