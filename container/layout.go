package container

import (
	"github.com/locpak/locpak/internal/filetime"
	"github.com/locpak/locpak/section"
)

// sink is the subset of bincodec.Writer's and bincodec.PosWriter's typed-
// write surface that layoutPass needs; both types satisfy it, which is what
// lets the same layout logic serve as both the measuring dry run and the
// real emission pass (spec.md S4.2).
type sink interface {
	U8(uint8)
	U16(uint16)
	U32(uint32)
	U64(uint64)
	Raw([]byte)
	PrefixedString(string)
	CString(string)
	Pad(int)
	Streamref(section.Streamref)
	Pos() int
}

// resolved collects the streamrefs layoutPass discovers while measuring
// (useResolved == false) so a second, real pass (useResolved == true) can
// emit them at the array sites that need to reference data written later in
// the same pass.
type resolved struct {
	SrcTable uint32
	ColNames uint32
	ColTable uint32
	KeyTable uint32

	ColNameRefs []section.Streamref
	ColDataRefs [][2]section.Streamref
	KeyRef      section.Streamref
}

// layoutPass emits the container's variable-length body — source manifest,
// column names, column data table, key table — onto s. When useResolved is
// false, placeholder streamrefs are written (their value doesn't affect
// emitted size) and the real values are recorded into r as they're
// discovered; when true, r's previously recorded values are written instead
// of placeholders. Called once with a PosWriter (useResolved=false) and
// once with a Writer (useResolved=true), in that order, per spec.md S4.2.
func layoutPass(s sink, m *Model, r *resolved, useResolved bool) {
	r.SrcTable = uint32(s.Pos())

	for _, src := range m.Sources {
		s.PrefixedString(src.CSVPath)

		high, low := filetime.SplitU32(filetime.ToFileTime(src.ModifiedTime))
		s.U32(high)
		s.U32(low)
	}

	s.Pad(4)

	r.ColNames = uint32(s.Pos())

	for i := range m.ColumnNames {
		if useResolved {
			s.Streamref(r.ColNameRefs[i])
		} else {
			s.Streamref(section.Streamref{})
		}
	}

	for i, name := range m.ColumnNames {
		begin := s.Pos()
		s.CString(name)
		s.Pad(4)
		end := s.Pos()

		if !useResolved {
			r.ColNameRefs = append(r.ColNameRefs, section.Streamref{Pos: uint32(begin), Size: uint32(end - begin)})
		}

		_ = i
	}

	r.ColTable = uint32(s.Pos())

	for i := range m.ColumnData {
		if useResolved {
			s.Streamref(r.ColDataRefs[i][0])
			s.Streamref(r.ColDataRefs[i][1])
		} else {
			s.Streamref(section.Streamref{})
			s.Streamref(section.Streamref{})
		}
	}

	for _, sym := range m.ColumnData {
		strBegin := s.Pos()

		for _, v := range sym.StrTab {
			s.U32(v)
		}

		for _, v := range sym.SeqTab {
			s.U16(v)
		}

		strEnd := s.Pos()

		symBegin := s.Pos()

		for _, v := range sym.SymTab {
			s.U32(v)
		}

		symEnd := s.Pos()

		if !useResolved {
			r.ColDataRefs = append(r.ColDataRefs, [2]section.Streamref{
				{Pos: uint32(strBegin), Size: uint32(strEnd - strBegin)},
				{Pos: uint32(symBegin), Size: uint32(symEnd - symBegin)},
			})
		}
	}

	r.KeyTable = uint32(s.Pos())

	if useResolved {
		s.Streamref(r.KeyRef)
	} else {
		s.Streamref(section.Streamref{})
	}

	keyBegin := s.Pos()

	for _, k := range m.KeysDesc {
		s.U32(k)
	}

	keyEnd := s.Pos()

	if !useResolved {
		r.KeyRef = section.Streamref{Pos: uint32(keyBegin), Size: uint32(keyEnd - keyBegin)}
	}
}
