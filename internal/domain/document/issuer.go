package document

// ResolveIssuer derives the signing issuer from the first teacher of
// the roster. An empty roster keeps the previous issuer untouched, so
// a manually entered issuer is never cleared, only overwritten by the
// next teacher mutation.
func ResolveIssuer(prev Issuer, teachers []Teacher) Issuer {
	if len(teachers) == 0 {
		return prev
	}
	first := teachers[0]
	return Issuer{
		Name:     first.Title + first.Firstname + " " + first.Lastname,
		Position: "ครู" + first.Department,
	}
}
