package compare

// Label returns the panel label for the text at index i: "A" for 0, "B" for
// 1, and so on. After "Z" labels continue as "AA", "AB", ...
func Label(i int) string {
	if i < 0 {
		return ""
	}
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
