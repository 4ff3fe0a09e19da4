package webdav

import (
	"encoding/xml"
	"io"
	"strings"
)

// MaxErrorBodySize limits the error body read by ReadServerMessage.
const MaxErrorBodySize = 64 * 1024

// sabreError is the error body of the server, for example:
//
//	<d:error xmlns:d="DAV:" xmlns:s="http://sabredav.org/ns">
//	  <s:exception>Sabre\DAV\Exception\Forbidden</s:exception>
//	  <s:message>Permission denied</s:message>
//	</d:error>
type sabreError struct {
	XMLName   xml.Name `xml:"DAV: error"`
	Exception string   `xml:"http://sabredav.org/ns exception"`
	Message   string   `xml:"http://sabredav.org/ns message"`
}

// ReadServerMessage reads the message from the XML error body of the response.
// An empty string is returned if the body is not a server error.
// The body is partially consumed, it must still be closed by Client.Exhaust.
func ReadServerMessage(res *Response) string {
	if res == nil || res.Body == nil {
		return ""
	}

	contentType := res.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "xml") {
		return ""
	}

	out := sabreError{}
	if err := xml.NewDecoder(io.LimitReader(res.Body, MaxErrorBodySize)).Decode(&out); err != nil {
		return ""
	}

	if msg := strings.TrimSpace(out.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(out.Exception)
}
