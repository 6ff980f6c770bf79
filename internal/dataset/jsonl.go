package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSONL writes samples as one JSON object per line
func WriteJSONL(w io.Writer, samples []Sample) error {
	buffered := bufio.NewWriter(w)
	encoder := json.NewEncoder(buffered)
	for i, sample := range samples {
		if err := encoder.Encode(sample); err != nil {
			return fmt.Errorf("encode sample %d: %w", i, err)
		}
	}
	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("flush samples: %w", err)
	}
	return nil
}
