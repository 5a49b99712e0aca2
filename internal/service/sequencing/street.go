package sequencing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"courier-sync/internal/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	leadingNumber  = regexp.MustCompile(`^(\d+)\p{L}?(?:[\s,]+|$)`)
	trailingNumber = regexp.MustCompile(`[\s,]+(?:no\.?\s*|№\s*|д\.?\s*)?(\d+)\p{L}?$`)
	separators     = regexp.MustCompile(`[\s.,;#]+`)

	abbreviations = map[string]string{
		"st":    "street",
		"str":   "street",
		"ave":   "avenue",
		"av":    "avenue",
		"rd":    "road",
		"blvd":  "boulevard",
		"dr":    "drive",
		"ln":    "lane",
		"pl":    "place",
		"ct":    "court",
		"hwy":   "highway",
		"sq":    "square",
		"ул":    "улица",
		"пр":    "проспект",
		"просп": "проспект",
		"пер":   "переулок",
		"пл":    "площадь",
		"ш":     "шоссе",
	}

	fold = cases.Fold()
)

type streetAddress struct {
	key       string
	number    int
	hasNumber bool
}

// foldText removes accents and folds case.
func foldText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return fold.String(stripped)
}

// parseStreet splits an address into a normalized street key and a house
// number taken from its start or end.
func parseStreet(address string) streetAddress {
	text := strings.TrimSpace(foldText(address))

	var parsed streetAddress
	if m := leadingNumber.FindStringSubmatch(text); m != nil {
		parsed.number, _ = strconv.Atoi(m[1])
		parsed.hasNumber = true
		text = text[len(m[0]):]
	} else if m := trailingNumber.FindStringSubmatch(text); m != nil {
		parsed.number, _ = strconv.Atoi(m[1])
		parsed.hasNumber = true
		text = text[:len(text)-len(m[0])]
	}

	tokens := separators.Split(text, -1)
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if full, ok := abbreviations[token]; ok {
			token = full
		}
		words = append(words, token)
	}
	parsed.key = strings.Join(words, " ")

	return parsed
}

type streetBucket struct {
	key      string
	stops    []entities.Stop
	numbers  []streetAddress
	centroid entities.Coordinates
}

// streetGrouping keeps stops of one street together, ordered by house number.
// Streets are visited by centroid distance from start, or alphabetically when
// start is nil.
func streetGrouping(start *entities.Coordinates, stops []entities.Stop) []entities.Stop {
	var buckets []*streetBucket
	byKey := make(map[string]*streetBucket)

	for _, stop := range stops {
		parsed := parseStreet(stop.Address)
		bucket, ok := byKey[parsed.key]
		if !ok {
			bucket = &streetBucket{key: parsed.key}
			byKey[parsed.key] = bucket
			buckets = append(buckets, bucket)
		}
		bucket.stops = append(bucket.stops, stop)
		bucket.numbers = append(bucket.numbers, parsed)
	}

	for _, bucket := range buckets {
		sortByHouseNumber(bucket)
		bucket.centroid = centroid(bucket.stops)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		if start != nil {
			di := haversine(*start, buckets[i].centroid)
			dj := haversine(*start, buckets[j].centroid)
			if di != dj {
				return di < dj
			}
		}
		return buckets[i].key < buckets[j].key
	})

	ordered := make([]entities.Stop, 0, len(stops))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket.stops...)
	}
	return ordered
}

// sortByHouseNumber sorts ascending; stops without a number go last in input order.
func sortByHouseNumber(bucket *streetBucket) {
	idx := make([]int, len(bucket.stops))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		na, nb := bucket.numbers[idx[a]], bucket.numbers[idx[b]]
		if na.hasNumber != nb.hasNumber {
			return na.hasNumber
		}
		return na.hasNumber && na.number < nb.number
	})

	stops := make([]entities.Stop, len(idx))
	numbers := make([]streetAddress, len(idx))
	for i, j := range idx {
		stops[i] = bucket.stops[j]
		numbers[i] = bucket.numbers[j]
	}
	bucket.stops = stops
	bucket.numbers = numbers
}

func centroid(stops []entities.Stop) entities.Coordinates {
	var c entities.Coordinates
	for _, stop := range stops {
		c.Latitude += stop.Latitude
		c.Longitude += stop.Longitude
	}
	n := float64(len(stops))
	return entities.Coordinates{Latitude: c.Latitude / n, Longitude: c.Longitude / n}
}
