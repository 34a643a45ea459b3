package locale

import "strings"

// FromPath returns the locale named by the first segment of path, or the
// default locale when that segment is not a configured locale. It never
// fails.
func (s *Set) FromPath(path string) Tag {
	seg, _ := firstSegment(path)
	return s.Coerce(Tag(seg))
}

// StripPrefix removes a leading "/<locale>" segment when <locale> is
// configured. Other paths are returned unchanged; an empty result becomes "/".
// The leading slash is optional, as in FromPath.
//
//	/en/fullstack -> /fullstack
//	en/fullstack  -> /fullstack
//	/xx/fullstack -> /xx/fullstack
//	/en/          -> /
func (s *Set) StripPrefix(path string) string {
	seg, tail, found := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !s.Contains(Tag(seg)) {
		return normalize(path)
	}
	if !found {
		return "/"
	}
	return normalize("/" + tail)
}

// TranslatePath returns the equivalent of path for the target locale, used
// for locale switcher links. The default locale is left unprefixed unless
// the set was built WithPrefixedDefault.
func (s *Set) TranslatePath(path string, target Tag) string {
	bare := s.StripPrefix(path)
	if !strings.HasPrefix(bare, "/") {
		bare = "/" + bare
	}
	target = s.Coerce(target)
	if target == s.def && !s.prefixDefault {
		return bare
	}
	if bare == "/" {
		return "/" + string(target)
	}
	return "/" + string(target) + bare
}

// FirstSegment returns the first segment of path, ignoring a leading slash.
func FirstSegment(path string) string {
	seg, _ := firstSegment(path)
	return seg
}

func firstSegment(path string) (string, string) {
	path = strings.TrimPrefix(path, "/")
	seg, rest, _ := strings.Cut(path, "/")
	return seg, rest
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
