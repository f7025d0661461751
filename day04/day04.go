// Package day04 validates passport records.
//
// A record is a blank-line separated block of "key:value" tokens. Seven
// fields are mandatory (byr iyr eyr hgt hcl ecl pid); cid is optional and
// never checked. Each mandatory field has its own rule:
//
//	byr  four digits, 1920..2002
//	iyr  four digits, 2010..2020
//	eyr  four digits, 2020..2030
//	hgt  150..193cm or 59..76in
//	hcl  '#' followed by six lowercase hex digits
//	ecl  one of amb blu brn gry grn hzl oth
//	pid  exactly nine digits
package day04

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/input"
	"github.com/katalvlaran/advent2020/solver"
)

// Title names the puzzle in listings.
const Title = "Passport Processing"

// ErrMalformedToken indicates a token without a ':' separator.
var ErrMalformedToken = errors.New("day04: token must be key:value")

// Required lists the mandatory fields in alphabetical order.
var Required = []string{"byr", "ecl", "eyr", "hcl", "hgt", "iyr", "pid"}

var (
	yearRe   = regexp.MustCompile(`^[0-9]{4}$`)
	heightRe = regexp.MustCompile(`^([0-9]+)(cm|in)$`)
	colourRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	pidRe    = regexp.MustCompile(`^[0-9]{9}$`)
)

var eyeColours = map[string]struct{}{
	"amb": {}, "blu": {}, "brn": {}, "gry": {}, "grn": {}, "hzl": {}, "oth": {},
}

// validators maps each mandatory field to its rule.
var validators = map[string]func(string) bool{
	"byr": yearBetween(1920, 2002),
	"iyr": yearBetween(2010, 2020),
	"eyr": yearBetween(2020, 2030),
	"hgt": validHeight,
	"hcl": colourRe.MatchString,
	"ecl": validEyeColour,
	"pid": pidRe.MatchString,
}

// Passport is the set of fields found in one record.
type Passport map[string]string

// ParsePassport splits a record on whitespace into key:value fields.
// A repeated key keeps its last value.
func ParsePassport(record string) (Passport, error) {
	p := make(Passport)
	for _, tok := range strings.Fields(record) {
		k, v, ok := strings.Cut(tok, ":")
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
		}
		p[k] = v
	}

	return p, nil
}

// HasRequiredFields reports whether every mandatory field is present.
func (p Passport) HasRequiredFields() bool {
	for _, k := range Required {
		if _, ok := p[k]; !ok {
			return false
		}
	}

	return true
}

// Valid reports whether every mandatory field is present and passes its rule.
func (p Passport) Valid() bool {
	for _, k := range Required {
		v, ok := p[k]
		if !ok || !ValidField(k, v) {
			return false
		}
	}

	return true
}

// ValidField checks value against the rule for key. Unknown keys, cid
// included, are always valid.
func ValidField(key, value string) bool {
	check, ok := validators[key]
	if !ok {
		return true
	}

	return check(value)
}

func yearBetween(lo, hi int) func(string) bool {
	return func(v string) bool {
		if !yearRe.MatchString(v) {
			return false
		}
		n, _ := strconv.Atoi(v)
		return n >= lo && n <= hi
	}
}

func validEyeColour(v string) bool {
	_, ok := eyeColours[v]
	return ok
}

func validHeight(v string) bool {
	m := heightRe.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}

	return n >= 59 && n <= 76
}

// Solve prints how many records have every mandatory field, and how many
// of those also pass validation.
func Solve(_ context.Context, req *solver.Request) error {
	groups := req.Groups()
	records := make([]string, len(groups))
	for i, g := range groups {
		records[i] = strings.Join(g, " ")
	}
	passports, err := input.ParseAll(records, ParsePassport)
	if err != nil {
		return err
	}
	req.Log.Debug("passports parsed", zap.Int("count", len(passports)))

	req.Printf("Found %d passports with all required fields\n", input.CountIf(passports, Passport.HasRequiredFields))
	req.Printf("Found %d valid passports\n", input.CountIf(passports, Passport.Valid))

	return nil
}
