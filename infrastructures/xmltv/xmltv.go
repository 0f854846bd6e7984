package xmltv

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/model/guide"
	"github.com/sobadon/epgd/domain/model/program"
	"github.com/sobadon/epgd/internal/errutil"
)

// start, stop 属性の時刻部分
// タイムゾーン部分は文字列のまま持ち回す
const timeLayout = "20060102150405"

type xmltvTV struct {
	XMLName          xml.Name         `xml:"tv"`
	SourceInfoName   string           `xml:"source-info-name,attr,omitempty"`
	GeneratorInfoURL string           `xml:"generator-info-url,attr,omitempty"`
	Channels         []xmltvChannel   `xml:"channel"`
	Programmes       []xmltvProgramme `xml:"programme"`
}

type xmltvChannel struct {
	ID string `xml:"id,attr"`

	// tvheadend は lcn を 2 つめの display-name として出すことがある
	DisplayNames []string   `xml:"display-name"`
	LCN          string     `xml:"lcn,omitempty"`
	Icon         *xmltvIcon `xml:"icon"`
}

type xmltvIcon struct {
	Src string `xml:"src,attr"`
}

type xmltvEpisodeNum struct {
	System string `xml:"system,attr"`
	Value  string `xml:",chardata"`
}

type xmltvRating struct {
	Values []string `xml:"value"`
}

type xmltvProgramme struct {
	Start           string            `xml:"start,attr"`
	Stop            string            `xml:"stop,attr"`
	Channel         string            `xml:"channel,attr"`
	Title           string            `xml:"title"`
	SubTitle        string            `xml:"sub-title,omitempty"`
	Desc            string            `xml:"desc,omitempty"`
	Date            string            `xml:"date,omitempty"`
	Categories      []string          `xml:"category"`
	Icon            *xmltvIcon        `xml:"icon"`
	EpisodeNums     []xmltvEpisodeNum `xml:"episode-num"`
	PreviouslyShown *struct{}         `xml:"previously-shown"`
	Rating          *xmltvRating      `xml:"rating"`
	Premiere        *struct{}         `xml:"premiere"`
}

func (c *client) Fetch(ctx context.Context, url string) (*guide.ParsedGuide, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}

	log.Ctx(ctx).Debug().Msgf("fetch guide .... (url = %s)", url)
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrHTTPRequest, err.Error())
	}

	if res.StatusCode != 200 {
		res.Body.Close()
		return nil, errors.Wrapf(errutil.ErrGetGuideNotOK, "http status code is %d", res.StatusCode)
	}

	defer res.Body.Close()
	g, err := Parse(res.Body)
	if err != nil {
		return nil, err
	}

	log.Ctx(ctx).Info().Msgf("successfully fetched guide (url = %s, programs = %d)", url, len(g.Programs))
	return g, nil
}

func Parse(input io.Reader) (*guide.ParsedGuide, error) {
	var tv xmltvTV
	decoder := xml.NewDecoder(input)
	err := decoder.Decode(&tv)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrXMLDecode, err.Error())
	}

	channels := map[string]program.Channel{}
	for _, xch := range tv.Channels {
		ch := xmltvChannelToChannel(xch)
		channels[ch.ID] = ch
	}

	var pgrams []program.Program
	for _, xp := range tv.Programmes {
		pgram, err := xmltvProgrammeToProgram(xp)
		if err != nil {
			return nil, err
		}
		pgrams = append(pgrams, pgram)
	}

	return &guide.ParsedGuide{
		Channels: channels,
		Programs: pgrams,
		Index:    guide.NewIndex(pgrams),
	}, nil
}

func xmltvChannelToChannel(xch xmltvChannel) program.Channel {
	ch := program.Channel{
		ID:  xch.ID,
		LCN: xch.LCN,
	}
	if len(xch.DisplayNames) >= 1 {
		ch.DisplayName = xch.DisplayNames[0]
	}
	if len(xch.DisplayNames) >= 2 && ch.LCN == "" {
		ch.LCN = xch.DisplayNames[1]
	}
	if xch.Icon != nil {
		ch.Icon = xch.Icon.Src
	}
	return ch
}

func xmltvProgrammeToProgram(xp xmltvProgramme) (program.Program, error) {
	start, tz, err := parseTimestamp(xp.Start)
	if err != nil {
		return program.Program{}, err
	}
	stop, _, err := parseTimestamp(xp.Stop)
	if err != nil {
		return program.Program{}, err
	}

	pgram := program.Program{
		UUID:            uuid.NewString(),
		Title:           xp.Title,
		Subtitle:        xp.SubTitle,
		Description:     xp.Desc,
		Start:           start,
		Stop:            stop,
		TZ:              tz,
		Channel:         xp.Channel,
		Categories:      xp.Categories,
		PreviouslyShown: xp.PreviouslyShown != nil,
		Premiere:        xp.Premiere != nil,
		Date:            xp.Date,
	}

	if xp.Icon != nil {
		pgram.Icon = xp.Icon.Src
	}
	if xp.Rating != nil {
		pgram.Ratings = xp.Rating.Values
	}

	for _, epn := range xp.EpisodeNums {
		switch epn.System {
		case "xmltv_ns":
			pgram.EpisodeNum = strings.TrimSpace(epn.Value)
		case "imdb.com":
			pgram.IMDBID = normalizeIMDBID(strings.TrimSpace(epn.Value))
		case "original-air-date":
			pgram.Airdate = strings.TrimSpace(epn.Value)
		}
	}

	return pgram, nil
}

// "20220801123000 +0900" → (時刻, "+0900")
// タイムゾーン表記がない場合もある
func parseTimestamp(value string) (time.Time, string, error) {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return time.Time{}, "", errors.Wrapf(errutil.ErrTimeParse, "empty timestamp")
	}

	t, err := time.Parse(timeLayout, parts[0])
	if err != nil {
		return time.Time{}, "", errors.Wrap(errutil.ErrTimeParse, err.Error())
	}

	tz := ""
	if len(parts) >= 2 {
		tz = parts[1]
	}
	return t, tz, nil
}

// imdb.com の episode-num は title/tt0088794 だったり tttt0088794 だったりと揺れる
func normalizeIMDBID(id string) string {
	id = strings.TrimPrefix(id, "title/")
	if strings.HasPrefix(id, "tttt") {
		id = id[2:]
	}
	return id
}

func (c *client) Write(g *guide.ParsedGuide, path string) error {
	tv := xmltvTV{
		SourceInfoName:   "http://xmltv.net",
		GeneratorInfoURL: "http://www.xmltv.org",
	}

	for _, ch := range g.Channels {
		tv.Channels = append(tv.Channels, channelToXMLTVChannel(ch))
	}
	for _, pgram := range g.Programs {
		tv.Programmes = append(tv.Programmes, programToXMLTVProgramme(pgram))
	}

	body, err := xml.MarshalIndent(tv, "", "  ")
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}

	content := "<?xml version='1.0' encoding='UTF-8'?>\n" +
		"<!DOCTYPE tv SYSTEM \"xmltv.dtd\">\n" +
		string(body) + "\n"

	err = os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}
	return nil
}

func channelToXMLTVChannel(ch program.Channel) xmltvChannel {
	xch := xmltvChannel{
		ID:  ch.ID,
		LCN: ch.LCN,
	}
	if ch.DisplayName != "" {
		xch.DisplayNames = []string{ch.DisplayName}
	}
	if ch.Icon != "" {
		xch.Icon = &xmltvIcon{Src: ch.Icon}
	}
	return xch
}

func programToXMLTVProgramme(pgram program.Program) xmltvProgramme {
	xp := xmltvProgramme{
		Start:      formatTimestamp(pgram.Start, pgram.TZ),
		Stop:       formatTimestamp(pgram.Stop, pgram.TZ),
		Channel:    pgram.Channel,
		Title:      pgram.Title,
		SubTitle:   pgram.Subtitle,
		Desc:       pgram.Description,
		Date:       pgram.Date,
		Categories: pgram.Categories,
	}

	if pgram.Icon != "" {
		xp.Icon = &xmltvIcon{Src: pgram.Icon}
	}
	if pgram.EpisodeNum != "" {
		xp.EpisodeNums = append(xp.EpisodeNums, xmltvEpisodeNum{System: "xmltv_ns", Value: pgram.EpisodeNum})
	}
	if pgram.Airdate != "" {
		xp.EpisodeNums = append(xp.EpisodeNums, xmltvEpisodeNum{System: "original-air-date", Value: pgram.Airdate})
	}
	if pgram.IMDBID != "" {
		xp.EpisodeNums = append(xp.EpisodeNums, xmltvEpisodeNum{System: "imdb.com", Value: "title/" + pgram.IMDBID})
	}
	if pgram.PreviouslyShown {
		xp.PreviouslyShown = &struct{}{}
	}
	if len(pgram.Ratings) != 0 {
		xp.Rating = &xmltvRating{Values: pgram.Ratings}
	}
	if pgram.Premiere {
		xp.Premiere = &struct{}{}
	}
	return xp
}

func formatTimestamp(t time.Time, tz string) string {
	if tz == "" {
		return t.Format(timeLayout)
	}
	return t.Format(timeLayout) + " " + tz
}
