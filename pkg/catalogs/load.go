package catalogs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agentstation/cinemap/pkg/constants"
	"github.com/agentstation/cinemap/pkg/errors"
)

// LineError describes a record line that could not be decoded.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error implements the error interface
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap implements errors.Unwrap
func (e LineError) Unwrap() error {
	return e.Err
}

// LoadReport summarizes a LoadFromFile call.
type LoadReport struct {
	Path    string
	Lines   int // non-blank lines read
	Loaded  int
	Skipped []LineError
}

// LoadFromFile reads the data file at path and appends every valid record
// to the catalog. Invalid lines are logged and skipped. Failing to open or
// read the file aborts the load with an IOError; records decoded before a
// read failure are not added.
func (c *Catalog) LoadFromFile(path string) (*LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	movies, skipped, err := Decode(f)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	for _, lineErr := range skipped {
		c.logger.Warn().
			Str("path", path).
			Int("line", lineErr.Line).
			Err(lineErr.Err).
			Msg("Skipping invalid record")
	}

	for _, m := range movies {
		_ = c.Add(m)
	}

	report := &LoadReport{
		Path:    path,
		Lines:   len(movies) + len(skipped),
		Loaded:  len(movies),
		Skipped: skipped,
	}

	c.logger.Debug().
		Str("path", path).
		Int("loaded", report.Loaded).
		Int("skipped", len(report.Skipped)).
		Msg("Loaded catalog")

	return report, nil
}

// Decode reads record lines from r. Lines that fail to parse are returned
// as LineErrors; blank lines are ignored. Lines have no length limit. The
// error is non-nil only when reading from r fails.
func Decode(r io.Reader) ([]*Movie, []LineError, error) {
	var (
		movies  []*Movie
		skipped []LineError
	)

	reader := bufio.NewReader(r)
	lineNum := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, nil, readErr
		}
		if readErr == io.EOF && line == "" {
			break
		}

		lineNum++
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			m, err := ParseLine(line)
			if err != nil {
				var parseErr *errors.ParseError
				if errors.As(err, &parseErr) {
					parseErr.Line = lineNum
				}
				skipped = append(skipped, LineError{Line: lineNum, Text: line, Err: err})
			} else {
				movies = append(movies, m)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return movies, skipped, nil
}

// ParseLine decodes one record line of the form
// title,director,actor1,actor2,actor3,rating.
func ParseLine(line string) (*Movie, error) {
	fields := strings.Split(line, constants.FieldSeparator)
	if len(fields) != constants.RecordFields {
		return nil, &errors.ParseError{
			Format:  "text",
			Message: fmt.Sprintf("expected %d fields, got %d", constants.RecordFields, len(fields)),
		}
	}

	ratingField := strings.TrimSpace(fields[5])
	rating, err := strconv.Atoi(ratingField)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  "text",
			Message: fmt.Sprintf("rating %q is not an integer", ratingField),
			Err:     err,
		}
	}

	return NewMovie(fields[0], fields[1], fields[2], fields[3], fields[4], rating)
}
