// seehuhn.de/go/fontpatch - patch metrics and names in sfnt font files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package name

import (
	"golang.org/x/text/language"
)

// Language returns the language of a name record.
// language.Und is returned if the language ID is not known.
func (t *Table) Language(rec *Record) language.Tag {
	switch rec.PlatformID {
	case PlatformWindows:
		if rec.LanguageID >= 0x8000 {
			return t.langTag(rec.LanguageID - 0x8000)
		}
		if tag, ok := windowsLanguages[rec.LanguageID]; ok {
			return tag
		}
	case PlatformMacintosh:
		if rec.LanguageID >= 0x8000 {
			return t.langTag(rec.LanguageID - 0x8000)
		}
		if tag, ok := macLanguages[rec.LanguageID]; ok {
			return tag
		}
	case PlatformUnicode:
		if rec.LanguageID >= 0x8000 {
			return t.langTag(rec.LanguageID - 0x8000)
		}
	}
	return language.Und
}

func (t *Table) langTag(idx uint16) language.Tag {
	if int(idx) >= len(t.LangTags) {
		return language.Und
	}
	s, err := utf16BE.NewDecoder().Bytes(t.LangTags[idx])
	if err != nil {
		return language.Und
	}
	tag, err := language.Parse(string(s))
	if err != nil {
		return language.Und
	}
	return tag
}

// The most common Windows language IDs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name#windows-language-ids
var windowsLanguages = map[uint16]language.Tag{
	0x0404: language.MustParse("zh-TW"),
	0x0405: language.MustParse("cs-CZ"),
	0x0406: language.MustParse("da-DK"),
	0x0407: language.MustParse("de-DE"),
	0x0408: language.MustParse("el-GR"),
	0x0409: language.AmericanEnglish,
	0x040A: language.MustParse("es-ES"),
	0x040B: language.MustParse("fi-FI"),
	0x040C: language.MustParse("fr-FR"),
	0x040E: language.MustParse("hu-HU"),
	0x0410: language.MustParse("it-IT"),
	0x0411: language.MustParse("ja-JP"),
	0x0412: language.MustParse("ko-KR"),
	0x0413: language.MustParse("nl-NL"),
	0x0414: language.MustParse("nb-NO"),
	0x0415: language.MustParse("pl-PL"),
	0x0416: language.MustParse("pt-BR"),
	0x0419: language.MustParse("ru-RU"),
	0x041D: language.MustParse("sv-SE"),
	0x041F: language.MustParse("tr-TR"),
	0x0804: language.MustParse("zh-CN"),
	0x0809: language.BritishEnglish,
	0x0816: language.MustParse("pt-PT"),
	0x0C0A: language.MustParse("es-ES"),
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/name#macintosh-language-ids
var macLanguages = map[uint16]language.Tag{
	0:  language.English,
	1:  language.French,
	2:  language.German,
	3:  language.Italian,
	4:  language.Dutch,
	5:  language.Swedish,
	6:  language.Spanish,
	7:  language.Danish,
	8:  language.Portuguese,
	9:  language.Norwegian,
	11: language.Japanese,
	12: language.Arabic,
	13: language.Finnish,
	14: language.Greek,
	19: language.TraditionalChinese,
	23: language.Korean,
	33: language.SimplifiedChinese,
}
