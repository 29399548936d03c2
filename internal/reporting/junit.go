package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openkit-devtools/openkit/internal/checks"
	"github.com/openkit-devtools/openkit/internal/doctor"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one doctor run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

// JUnitFailure represents a failed check.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a check disabled by configuration.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// classname groups the doctor checks in CI test views.
const classname = "openkit.memory.doctor"

// ConvertToJUnit converts a doctor run to JUnit XML. Failed checks become
// failures, warnings pass with their details in system-out, and disabled
// checks are skipped.
func ConvertToJUnit(res *doctor.Result, elapsed time.Duration, at time.Time) *JUnitTestSuites {
	suite := JUnitTestSuite{
		Name:      "memory doctor",
		Tests:     len(res.Checks),
		Time:      elapsed.Seconds(),
		Timestamp: at.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "docs_root", Value: res.Set.Root},
			{Name: "documents", Value: fmt.Sprintf("%d", res.Set.Len())},
			{Name: "score", Value: fmt.Sprintf("%d", res.Report.Score)},
			{Name: "status", Value: res.Report.Status.String()},
		},
	}

	for _, r := range res.Checks {
		tc := JUnitTestCase{Name: r.Name, Classname: classname}
		switch r.Outcome {
		case checks.OutcomeFail:
			tc.Failure = &JUnitFailure{
				Message: r.Summary,
				Type:    "CheckFailure",
				Body:    detailsBody(r.Details),
			}
			suite.Failures++
		case checks.OutcomeWarn:
			tc.SystemOut = r.Summary + "\n" + detailsBody(r.Details)
		case checks.OutcomeSkip:
			tc.Skipped = &JUnitSkipped{Message: r.Summary}
			suite.Skipped++
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Time:       suite.Time,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func detailsBody(details []string) string {
	if len(details) == 0 {
		return ""
	}
	return strings.Join(details, "\n") + "\n"
}

// MarshalJUnitXML renders suites with the XML header.
func MarshalJUnitXML(suites *JUnitTestSuites) ([]byte, error) {
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JUnit XML: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(suites *JUnitTestSuites, path string) error {
	data, err := MarshalJUnitXML(suites)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
