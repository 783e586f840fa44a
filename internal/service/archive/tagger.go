package archive

//go:generate $MOCKGEN -source=tagger.go -destination=mocks/tagger_mock.go

import (
	"context"
	"errors"
	"mime"
	"os"
	"path/filepath"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"bandcamp-archiver/internal/logger"
)

// Tagger writes metadata tags to downloaded FLAC files.
type Tagger interface {
	// TagTrack writes title and artist comments to the FLAC file at trackPath
	// and embeds the cover image at coverPath, when one is given.
	TagTrack(ctx context.Context, req *TagTrackRequest) error
}

// TagTrackRequest contains parameters for tagging a downloaded track.
type TagTrackRequest struct {
	// TrackPath is the file path of the FLAC track.
	TrackPath string
	// CoverPath is the file path of the cover art image; empty disables embedding.
	CoverPath string
	// Metadata is the release the track belongs to.
	Metadata *ReleaseMetadata
}

// TaggerImpl provides the default implementation of Tagger.
type TaggerImpl struct{}

// extractFLACCommentResult contains the result of extracting FLAC comment metadata.
type extractFLACCommentResult struct {
	// Comment is the FLAC Vorbis comment metadata block.
	Comment *flacvorbis.MetaDataBlockVorbisComment
	// Index is the index of the comment block in the FLAC file metadata (-1 if not found).
	Index int
}

// ErrEmptyTrackPath indicates that the track file path is empty.
var ErrEmptyTrackPath = errors.New("track path cannot be empty")

// NewTagger creates a new Tagger instance.
func NewTagger() Tagger {
	return new(TaggerImpl)
}

// TagTrack writes title and artist comments to the FLAC file at trackPath and
// embeds the cover image at coverPath, when one is given.
func (t *TaggerImpl) TagTrack(ctx context.Context, req *TagTrackRequest) error {
	if req.TrackPath == "" {
		return ErrEmptyTrackPath
	}

	f, err := flac.ParseFile(filepath.Clean(req.TrackPath))
	if err != nil {
		return err
	}

	commentResult, err := t.extractFLACComment(f)
	if err != nil {
		return err
	}

	tag := commentResult.Comment
	if tag == nil {
		tag = flacvorbis.New()
	}

	if err = t.addFLACTags(tag, req.Metadata); err != nil {
		return err
	}

	tagMeta := tag.Marshal()
	if commentResult.Index >= 0 {
		f.Meta[commentResult.Index] = &tagMeta
	} else {
		f.Meta = append(f.Meta, &tagMeta)
	}

	t.embedFLACCover(ctx, f, req.CoverPath)

	return f.Save(req.TrackPath)
}

func (t *TaggerImpl) extractFLACComment(f *flac.File) (*extractFLACCommentResult, error) {
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			return &extractFLACCommentResult{
				Comment: comment,
				Index:   idx,
			}, nil
		}
	}

	return &extractFLACCommentResult{
		Comment: nil,
		Index:   -1,
	}, nil
}

func (t *TaggerImpl) addFLACTags(tag *flacvorbis.MetaDataBlockVorbisComment, metadata *ReleaseMetadata) error {
	flacTags := map[string]string{
		"ARTIST": metadata.Artist,
		"TITLE":  metadata.Current.Title,
	}

	for k, v := range flacTags {
		if v == "" {
			continue
		}

		if err := tag.Add(k, v); err != nil {
			return err
		}
	}

	return nil
}

func (t *TaggerImpl) embedFLACCover(ctx context.Context, f *flac.File, coverPath string) {
	if coverPath == "" {
		return
	}

	imageData, err := os.ReadFile(filepath.Clean(coverPath))
	if err != nil {
		logger.Errorf(ctx, "Failed to read cover image %q: %v", coverPath, err)

		return
	}

	imageMIMEType := mime.TypeByExtension(filepath.Ext(coverPath))

	picture, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "", imageData, imageMIMEType)
	if err != nil {
		logger.Errorf(ctx, "Failed to embed image to FLAC: %v", err)

		return
	}

	pictureMeta := picture.Marshal()
	f.Meta = append(f.Meta, &pictureMeta)
}
