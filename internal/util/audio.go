package util

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// 生成服务的语音简报返回裸PCM（s16le 单声道 24kHz）。
// 播放前要么包一层WAV头，要么用ffmpeg转成mp3

const (
	BriefingSampleRate = 24000
	briefingChannels   = 1
	briefingBitDepth   = 16
)

// WrapPCMToWAV 给裸PCM加上标准RIFF/WAVE头
func WrapPCMToWAV(pcm []byte, sampleRate int) []byte {
	byteRate := sampleRate * briefingChannels * briefingBitDepth / 8
	blockAlign := briefingChannels * briefingBitDepth / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(briefingChannels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(briefingBitDepth))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// TranscodePCMToMP3 用ffmpeg把裸PCM转成mp3，返回mp3字节。
// ffmpeg不可用时调用方应回退到WAV封装
func TranscodePCMToMP3(pcm []byte, sampleRate int) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "odyssey-briefing-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	pcmPath := filepath.Join(tmpDir, "briefing.pcm")
	mp3Path := filepath.Join(tmpDir, "briefing.mp3")

	if err := os.WriteFile(pcmPath, pcm, 0644); err != nil {
		return nil, err
	}

	err = ffmpeg.Input(pcmPath, ffmpeg.KwArgs{
		"f":  "s16le",
		"ar": fmt.Sprintf("%d", sampleRate),
		"ac": fmt.Sprintf("%d", briefingChannels),
	}).
		Output(mp3Path, ffmpeg.KwArgs{"b:a": "96k"}).
		OverWriteOutput().
		Silent(true).
		Run()
	if err != nil {
		return nil, fmt.Errorf("transcode failed: %v", err)
	}

	return os.ReadFile(mp3Path)
}
