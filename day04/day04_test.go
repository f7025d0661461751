package day04_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/advent2020/config"
	"github.com/katalvlaran/advent2020/day04"
	"github.com/katalvlaran/advent2020/solver"
)

func TestValidField(t *testing.T) {
	cases := []struct {
		key, value string
		want       bool
	}{
		{"byr", "1919", false},
		{"byr", "1920", true},
		{"byr", "2002", true},
		{"byr", "2003", false},
		{"byr", "02002", false},
		{"iyr", "2009", false},
		{"iyr", "2010", true},
		{"iyr", "2020", true},
		{"iyr", "2021", false},
		{"eyr", "2019", false},
		{"eyr", "2020", true},
		{"eyr", "2030", true},
		{"eyr", "2031", false},
		{"hgt", "149cm", false},
		{"hgt", "150cm", true},
		{"hgt", "193cm", true},
		{"hgt", "194cm", false},
		{"hgt", "58in", false},
		{"hgt", "59in", true},
		{"hgt", "76in", true},
		{"hgt", "77in", false},
		{"hgt", "190", false},
		{"hcl", "#123abc", true},
		{"hcl", "#123abz", false},
		{"hcl", "#123ABC", false},
		{"hcl", "123abc", false},
		{"ecl", "brn", true},
		{"ecl", "wat", false},
		{"pid", "000000001", true},
		{"pid", "01234567", false},
		{"pid", "0123456789", false},
		{"cid", "anything", true},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			assert.Equal(t, tc.want, day04.ValidField(tc.key, tc.value))
		})
	}
}

func TestParsePassport(t *testing.T) {
	p, err := day04.ParsePassport("ecl:gry pid:860033327\neyr:2020 cid:147")
	require.NoError(t, err)
	assert.Equal(t, day04.Passport{"ecl": "gry", "pid": "860033327", "eyr": "2020", "cid": "147"}, p)

	_, err = day04.ParsePassport("ecl:gry pid")
	assert.ErrorIs(t, err, day04.ErrMalformedToken)
}

const batch = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in

eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f
`

func TestSolve(t *testing.T) {
	var out bytes.Buffer
	req := &solver.Request{
		Content: batch,
		Params:  config.DefaultParams(),
		Out:     &out,
		Log:     zap.NewNop(),
	}
	require.NoError(t, day04.Solve(context.Background(), req))
	assert.Equal(t, "Found 4 passports with all required fields\nFound 3 valid passports\n", out.String())
}
