package console_test

import (
	"bytes"
	"testing"

	"github.com/julien-sobczak/the-notelinter/pkg/console"
	"gotest.tools/assert"
)

func TestNewProgressLog_default(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(2,
		// Override options for unit-testing purposes
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 2+1; i++ {
		l.Log(i, "Processing...")
	}
	l.Clear("Done!!!!!!!!!!!!!!!!!!!!!!!!!!")

	expected := "" +
		"           (0/2) Processing...\r" +
		"#####      (1/2) Processing...\r" +
		"########## (2/2) Processing...\r" +
		"Done!!!!!!!!!!!!!!!!!!!!!!!!!!\n"
	assert.Equal(t, out.String(), expected)
}

func TestNewProgressLog_percent(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(5,
		console.ShowPercent(),
		console.ToWriter(&out),
		console.LineLength(30))

	for i := 0; i < 5+1; i++ {
		l.Log(i, "Processing...")
	}
	l.Clear("")

	expected := "" +
		"           (  0%) Processing..\r" +
		"##         ( 20%) Processing..\r" +
		"####       ( 40%) Processing..\r" +
		"######     ( 60%) Processing..\r" +
		"########   ( 80%) Processing..\r" +
		"########## (100%) Processing..\r" +
		"                              \r"
	assert.Equal(t, out.String(), expected)
}

func TestNewProgressLog_wideCharacters(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(2,
		console.HideBar(),
		console.ToWriter(&out),
		console.LineLength(20))

	l.Log(1, "Notes/📘Go.md")
	l.Log(2, "Notes/📘Rust.md")

	expected := "" +
		"(1/2) Notes/📘Go.m\r" +
		"(2/2) Notes/📘Rust\r"
	assert.Equal(t, out.String(), expected)
}

func TestNewProgressLog_noSteps(t *testing.T) {
	var out bytes.Buffer

	l := console.NewProgressLog(0, console.ToWriter(&out), console.LineLength(20))
	l.Log(0, "Nothing")

	assert.Equal(t, out.String(), "########## (0/0) Not\r")
}
