package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Corp is one entry of the OpenDart corp code list.
type Corp struct {
	CorpCode    string `xml:"corp_code" json:"corp_code" db:"corp_code"`
	CorpName    string `xml:"corp_name" json:"corp_name" db:"corp_name"`
	CorpEngName string `xml:"corp_eng_name" json:"corp_eng_name,omitempty" db:"corp_eng_name"`
	StockCode   string `xml:"stock_code" json:"stock_code" db:"stock_code"`
	ModifyDate  string `xml:"modify_date" json:"modify_date,omitempty" db:"modify_date"`
}

// Listed reports whether the company has a KRX stock code.
func (c Corp) Listed() bool {
	return strings.TrimSpace(c.StockCode) != ""
}

type corpCodeDocument struct {
	XMLName xml.Name `xml:"result"`
	List    []Corp   `xml:"list"`
}

// xmlEnvelope is what corpCode.xml returns instead of a zip on failure.
type xmlEnvelope struct {
	XMLName xml.Name `xml:"result"`
	Status  string   `xml:"status"`
	Message string   `xml:"message"`
}

// parseCorpCodeZip unpacks the corpCode.xml download: a zip archive holding
// a single CORPCODE.xml document.
func parseCorpCodeZip(data []byte) ([]Corp, error) {
	if !bytes.HasPrefix(data, []byte("PK")) {
		var env xmlEnvelope
		if xml.Unmarshal(data, &env) == nil && env.Status != "" {
			if err := (dartEnvelope{Status: env.Status, Message: env.Message}).err(endpointCorpCodes); err != nil {
				return nil, err
			}
		}
		var jsonEnv dartEnvelope
		if json.Unmarshal(data, &jsonEnv) == nil {
			if err := jsonEnv.err(endpointCorpCodes); err != nil {
				return nil, err
			}
		}
		return nil, errNotZipArchive
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open corp code archive: %w", err)
	}

	for _, file := range archive.File {
		if !strings.HasSuffix(strings.ToLower(file.Name), ".xml") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		defer rc.Close()
		return parseCorpCodeXML(rc)
	}

	return nil, errNoXMLInArchive
}

func parseCorpCodeXML(r io.Reader) ([]Corp, error) {
	var doc corpCodeDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse corp code xml: %w", err)
	}
	for i := range doc.List {
		c := &doc.List[i]
		c.CorpCode = strings.TrimSpace(c.CorpCode)
		c.CorpName = strings.TrimSpace(c.CorpName)
		c.CorpEngName = strings.TrimSpace(c.CorpEngName)
		c.StockCode = strings.TrimSpace(c.StockCode)
		c.ModifyDate = strings.TrimSpace(c.ModifyDate)
	}
	return doc.List, nil
}
