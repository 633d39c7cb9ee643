// Code generated by impgen. DO NOT EDIT.

package fileops_test

import (
	filesystem "github.com/joe/pathkit/pkg/filesystem"
	fspath "github.com/joe/pathkit/pkg/fspath"
	_imptest "github.com/toejough/imptest/imptest"
	os "os"
	time "time"
)

// FileSystemMockChmodArgs holds typed arguments for Chmod.
type FileSystemMockChmodArgs struct {
	Path string
	Mode os.FileMode
}

// FileSystemMockChmodCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockChmodCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockChmodCall) GetArgs() FileSystemMockChmodArgs {
	raw := c.RawArgs()
	return FileSystemMockChmodArgs{
		Path: raw[0].(string),
		Mode: raw[1].(os.FileMode),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockChmodCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockChmodMethod wraps DependencyMethod with typed returns.
type FileSystemMockChmodMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockChmodMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockChmodMethod) ExpectCalledWithExactly(path string, mode os.FileMode) *FileSystemMockChmodCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path, mode)
	return &FileSystemMockChmodCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockChmodMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockChmodCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockChmodCall{DependencyCall: call}
}

// FileSystemMockChtimesArgs holds typed arguments for Chtimes.
type FileSystemMockChtimesArgs struct {
	Path  string
	Atime time.Time
	Mtime time.Time
}

// FileSystemMockChtimesCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockChtimesCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockChtimesCall) GetArgs() FileSystemMockChtimesArgs {
	raw := c.RawArgs()
	return FileSystemMockChtimesArgs{
		Path:  raw[0].(string),
		Atime: raw[1].(time.Time),
		Mtime: raw[2].(time.Time),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockChtimesCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockChtimesMethod wraps DependencyMethod with typed returns.
type FileSystemMockChtimesMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockChtimesMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockChtimesMethod) ExpectCalledWithExactly(path string, atime time.Time, mtime time.Time) *FileSystemMockChtimesCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path, atime, mtime)
	return &FileSystemMockChtimesCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockChtimesMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockChtimesCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockChtimesCall{DependencyCall: call}
}

// FileSystemMockCreateArgs holds typed arguments for Create.
type FileSystemMockCreateArgs struct {
	Path string
	Perm os.FileMode
}

// FileSystemMockCreateCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockCreateCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockCreateCall) GetArgs() FileSystemMockCreateArgs {
	raw := c.RawArgs()
	return FileSystemMockCreateArgs{
		Path: raw[0].(string),
		Perm: raw[1].(os.FileMode),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockCreateCall) InjectReturnValues(result0 filesystem.File, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockCreateMethod wraps DependencyMethod with typed returns.
type FileSystemMockCreateMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockCreateMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockCreateMethod) ExpectCalledWithExactly(path string, perm os.FileMode) *FileSystemMockCreateCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path, perm)
	return &FileSystemMockCreateCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockCreateMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockCreateCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockCreateCall{DependencyCall: call}
}

// FileSystemMockGetwdCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockGetwdCall struct {
	*_imptest.DependencyCall
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockGetwdCall) InjectReturnValues(result0 string, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockHandle is the test handle for FileSystem.
type FileSystemMockHandle struct {
	Mock       filesystem.FileSystem
	Method     *FileSystemMockMethods
	Controller *_imptest.Imp
}

// FileSystemMockLinkArgs holds typed arguments for Link.
type FileSystemMockLinkArgs struct {
	Target string
	Link   string
}

// FileSystemMockLinkCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockLinkCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockLinkCall) GetArgs() FileSystemMockLinkArgs {
	raw := c.RawArgs()
	return FileSystemMockLinkArgs{
		Target: raw[0].(string),
		Link:   raw[1].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockLinkCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockLinkCountArgs holds typed arguments for LinkCount.
type FileSystemMockLinkCountArgs struct {
	Path string
}

// FileSystemMockLinkCountCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockLinkCountCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockLinkCountCall) GetArgs() FileSystemMockLinkCountArgs {
	raw := c.RawArgs()
	return FileSystemMockLinkCountArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockLinkCountCall) InjectReturnValues(result0 uint64, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockLinkCountMethod wraps DependencyMethod with typed returns.
type FileSystemMockLinkCountMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockLinkCountMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockLinkCountMethod) ExpectCalledWithExactly(path string) *FileSystemMockLinkCountCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockLinkCountCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockLinkCountMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockLinkCountCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockLinkCountCall{DependencyCall: call}
}

// FileSystemMockLinkMethod wraps DependencyMethod with typed returns.
type FileSystemMockLinkMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockLinkMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockLinkMethod) ExpectCalledWithExactly(target string, link string) *FileSystemMockLinkCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(target, link)
	return &FileSystemMockLinkCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockLinkMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockLinkCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockLinkCall{DependencyCall: call}
}

// FileSystemMockLstatArgs holds typed arguments for Lstat.
type FileSystemMockLstatArgs struct {
	Path string
}

// FileSystemMockLstatCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockLstatCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockLstatCall) GetArgs() FileSystemMockLstatArgs {
	raw := c.RawArgs()
	return FileSystemMockLstatArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockLstatCall) InjectReturnValues(result0 os.FileInfo, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockLstatMethod wraps DependencyMethod with typed returns.
type FileSystemMockLstatMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockLstatMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockLstatMethod) ExpectCalledWithExactly(path string) *FileSystemMockLstatCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockLstatCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockLstatMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockLstatCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockLstatCall{DependencyCall: call}
}

// FileSystemMockMethods holds method wrappers for setting expectations.
type FileSystemMockMethods struct {
	Style     *_imptest.DependencyMethod
	Stat      *FileSystemMockStatMethod
	Lstat     *FileSystemMockLstatMethod
	OpenDir   *FileSystemMockOpenDirMethod
	Open      *FileSystemMockOpenMethod
	Create    *FileSystemMockCreateMethod
	Mkdir     *FileSystemMockMkdirMethod
	Remove    *FileSystemMockRemoveMethod
	Rename    *FileSystemMockRenameMethod
	Symlink   *FileSystemMockSymlinkMethod
	Link      *FileSystemMockLinkMethod
	Readlink  *FileSystemMockReadlinkMethod
	Chmod     *FileSystemMockChmodMethod
	Chtimes   *FileSystemMockChtimesMethod
	Truncate  *FileSystemMockTruncateMethod
	SameFile  *FileSystemMockSameFileMethod
	LinkCount *FileSystemMockLinkCountMethod
	Space     *FileSystemMockSpaceMethod
	Getwd     *_imptest.DependencyMethod
	TempDir   *_imptest.DependencyMethod
}

// FileSystemMockMkdirArgs holds typed arguments for Mkdir.
type FileSystemMockMkdirArgs struct {
	Path string
	Perm os.FileMode
}

// FileSystemMockMkdirCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockMkdirCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockMkdirCall) GetArgs() FileSystemMockMkdirArgs {
	raw := c.RawArgs()
	return FileSystemMockMkdirArgs{
		Path: raw[0].(string),
		Perm: raw[1].(os.FileMode),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockMkdirCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockMkdirMethod wraps DependencyMethod with typed returns.
type FileSystemMockMkdirMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockMkdirMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockMkdirMethod) ExpectCalledWithExactly(path string, perm os.FileMode) *FileSystemMockMkdirCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path, perm)
	return &FileSystemMockMkdirCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockMkdirMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockMkdirCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockMkdirCall{DependencyCall: call}
}

// FileSystemMockOpenArgs holds typed arguments for Open.
type FileSystemMockOpenArgs struct {
	Path string
}

// FileSystemMockOpenCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockOpenCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockOpenCall) GetArgs() FileSystemMockOpenArgs {
	raw := c.RawArgs()
	return FileSystemMockOpenArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockOpenCall) InjectReturnValues(result0 filesystem.File, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockOpenDirArgs holds typed arguments for OpenDir.
type FileSystemMockOpenDirArgs struct {
	Path string
}

// FileSystemMockOpenDirCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockOpenDirCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockOpenDirCall) GetArgs() FileSystemMockOpenDirArgs {
	raw := c.RawArgs()
	return FileSystemMockOpenDirArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockOpenDirCall) InjectReturnValues(result0 filesystem.DirStream, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockOpenDirMethod wraps DependencyMethod with typed returns.
type FileSystemMockOpenDirMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockOpenDirMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockOpenDirMethod) ExpectCalledWithExactly(path string) *FileSystemMockOpenDirCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockOpenDirCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockOpenDirMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockOpenDirCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockOpenDirCall{DependencyCall: call}
}

// FileSystemMockOpenMethod wraps DependencyMethod with typed returns.
type FileSystemMockOpenMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockOpenMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockOpenMethod) ExpectCalledWithExactly(path string) *FileSystemMockOpenCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockOpenCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockOpenMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockOpenCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockOpenCall{DependencyCall: call}
}

// FileSystemMockReadlinkArgs holds typed arguments for Readlink.
type FileSystemMockReadlinkArgs struct {
	Path string
}

// FileSystemMockReadlinkCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockReadlinkCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockReadlinkCall) GetArgs() FileSystemMockReadlinkArgs {
	raw := c.RawArgs()
	return FileSystemMockReadlinkArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockReadlinkCall) InjectReturnValues(result0 string, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockReadlinkMethod wraps DependencyMethod with typed returns.
type FileSystemMockReadlinkMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockReadlinkMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockReadlinkMethod) ExpectCalledWithExactly(path string) *FileSystemMockReadlinkCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockReadlinkCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockReadlinkMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockReadlinkCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockReadlinkCall{DependencyCall: call}
}

// FileSystemMockRemoveArgs holds typed arguments for Remove.
type FileSystemMockRemoveArgs struct {
	Path string
}

// FileSystemMockRemoveCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockRemoveCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockRemoveCall) GetArgs() FileSystemMockRemoveArgs {
	raw := c.RawArgs()
	return FileSystemMockRemoveArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockRemoveCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockRemoveMethod wraps DependencyMethod with typed returns.
type FileSystemMockRemoveMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockRemoveMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockRemoveMethod) ExpectCalledWithExactly(path string) *FileSystemMockRemoveCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockRemoveCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockRemoveMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockRemoveCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockRemoveCall{DependencyCall: call}
}

// FileSystemMockRenameArgs holds typed arguments for Rename.
type FileSystemMockRenameArgs struct {
	Oldpath string
	Newpath string
}

// FileSystemMockRenameCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockRenameCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockRenameCall) GetArgs() FileSystemMockRenameArgs {
	raw := c.RawArgs()
	return FileSystemMockRenameArgs{
		Oldpath: raw[0].(string),
		Newpath: raw[1].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockRenameCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockRenameMethod wraps DependencyMethod with typed returns.
type FileSystemMockRenameMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockRenameMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockRenameMethod) ExpectCalledWithExactly(oldpath string, newpath string) *FileSystemMockRenameCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(oldpath, newpath)
	return &FileSystemMockRenameCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockRenameMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockRenameCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockRenameCall{DependencyCall: call}
}

// FileSystemMockSameFileArgs holds typed arguments for SameFile.
type FileSystemMockSameFileArgs struct {
	Path1 string
	Path2 string
}

// FileSystemMockSameFileCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockSameFileCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockSameFileCall) GetArgs() FileSystemMockSameFileArgs {
	raw := c.RawArgs()
	return FileSystemMockSameFileArgs{
		Path1: raw[0].(string),
		Path2: raw[1].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockSameFileCall) InjectReturnValues(result0 bool, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockSameFileMethod wraps DependencyMethod with typed returns.
type FileSystemMockSameFileMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockSameFileMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockSameFileMethod) ExpectCalledWithExactly(path1 string, path2 string) *FileSystemMockSameFileCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path1, path2)
	return &FileSystemMockSameFileCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockSameFileMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockSameFileCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockSameFileCall{DependencyCall: call}
}

// FileSystemMockSpaceArgs holds typed arguments for Space.
type FileSystemMockSpaceArgs struct {
	Path string
}

// FileSystemMockSpaceCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockSpaceCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockSpaceCall) GetArgs() FileSystemMockSpaceArgs {
	raw := c.RawArgs()
	return FileSystemMockSpaceArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockSpaceCall) InjectReturnValues(result0 filesystem.SpaceInfo, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockSpaceMethod wraps DependencyMethod with typed returns.
type FileSystemMockSpaceMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockSpaceMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockSpaceMethod) ExpectCalledWithExactly(path string) *FileSystemMockSpaceCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockSpaceCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockSpaceMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockSpaceCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockSpaceCall{DependencyCall: call}
}

// FileSystemMockStatArgs holds typed arguments for Stat.
type FileSystemMockStatArgs struct {
	Path string
}

// FileSystemMockStatCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockStatCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockStatCall) GetArgs() FileSystemMockStatArgs {
	raw := c.RawArgs()
	return FileSystemMockStatArgs{
		Path: raw[0].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockStatCall) InjectReturnValues(result0 os.FileInfo, result1 error) {
	c.DependencyCall.InjectReturnValues(result0, result1)
}

// FileSystemMockStatMethod wraps DependencyMethod with typed returns.
type FileSystemMockStatMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockStatMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockStatMethod) ExpectCalledWithExactly(path string) *FileSystemMockStatCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path)
	return &FileSystemMockStatCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockStatMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockStatCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockStatCall{DependencyCall: call}
}

// FileSystemMockStyleCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockStyleCall struct {
	*_imptest.DependencyCall
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockStyleCall) InjectReturnValues(result0 fspath.Style) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockSymlinkArgs holds typed arguments for Symlink.
type FileSystemMockSymlinkArgs struct {
	Target string
	Link   string
}

// FileSystemMockSymlinkCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockSymlinkCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockSymlinkCall) GetArgs() FileSystemMockSymlinkArgs {
	raw := c.RawArgs()
	return FileSystemMockSymlinkArgs{
		Target: raw[0].(string),
		Link:   raw[1].(string),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockSymlinkCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockSymlinkMethod wraps DependencyMethod with typed returns.
type FileSystemMockSymlinkMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockSymlinkMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockSymlinkMethod) ExpectCalledWithExactly(target string, link string) *FileSystemMockSymlinkCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(target, link)
	return &FileSystemMockSymlinkCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockSymlinkMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockSymlinkCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockSymlinkCall{DependencyCall: call}
}

// FileSystemMockTempDirCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockTempDirCall struct {
	*_imptest.DependencyCall
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockTempDirCall) InjectReturnValues(result0 string) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockTruncateArgs holds typed arguments for Truncate.
type FileSystemMockTruncateArgs struct {
	Path string
	Size int64
}

// FileSystemMockTruncateCall wraps DependencyCall with typed GetArgs and InjectReturnValues.
type FileSystemMockTruncateCall struct {
	*_imptest.DependencyCall
}

// GetArgs returns the typed arguments for this call.
func (c *FileSystemMockTruncateCall) GetArgs() FileSystemMockTruncateArgs {
	raw := c.RawArgs()
	return FileSystemMockTruncateArgs{
		Path: raw[0].(string),
		Size: raw[1].(int64),
	}
}

// InjectReturnValues specifies the typed values the mock should return.
func (c *FileSystemMockTruncateCall) InjectReturnValues(result0 error) {
	c.DependencyCall.InjectReturnValues(result0)
}

// FileSystemMockTruncateMethod wraps DependencyMethod with typed returns.
type FileSystemMockTruncateMethod struct {
	*_imptest.DependencyMethod
	// Eventually is the async version of this method for concurrent code.
	Eventually *FileSystemMockTruncateMethod
}

// ExpectCalledWithExactly waits for a call with exactly the specified arguments.
func (m *FileSystemMockTruncateMethod) ExpectCalledWithExactly(path string, size int64) *FileSystemMockTruncateCall {
	call := m.DependencyMethod.ExpectCalledWithExactly(path, size)
	return &FileSystemMockTruncateCall{DependencyCall: call}
}

// ExpectCalledWithMatches waits for a call with arguments matching the given matchers.
func (m *FileSystemMockTruncateMethod) ExpectCalledWithMatches(matchers ...any) *FileSystemMockTruncateCall {
	call := m.DependencyMethod.ExpectCalledWithMatches(matchers...)
	return &FileSystemMockTruncateCall{DependencyCall: call}
}

// MockFileSystem creates a new FileSystemMockHandle for testing.
func MockFileSystem(t _imptest.TestReporter) *FileSystemMockHandle {
	ctrl := _imptest.NewImp(t)
	methods := &FileSystemMockMethods{
		Style:     _imptest.NewDependencyMethod(ctrl, "Style"),
		Stat:      newFileSystemMockStatMethod(_imptest.NewDependencyMethod(ctrl, "Stat")),
		Lstat:     newFileSystemMockLstatMethod(_imptest.NewDependencyMethod(ctrl, "Lstat")),
		OpenDir:   newFileSystemMockOpenDirMethod(_imptest.NewDependencyMethod(ctrl, "OpenDir")),
		Open:      newFileSystemMockOpenMethod(_imptest.NewDependencyMethod(ctrl, "Open")),
		Create:    newFileSystemMockCreateMethod(_imptest.NewDependencyMethod(ctrl, "Create")),
		Mkdir:     newFileSystemMockMkdirMethod(_imptest.NewDependencyMethod(ctrl, "Mkdir")),
		Remove:    newFileSystemMockRemoveMethod(_imptest.NewDependencyMethod(ctrl, "Remove")),
		Rename:    newFileSystemMockRenameMethod(_imptest.NewDependencyMethod(ctrl, "Rename")),
		Symlink:   newFileSystemMockSymlinkMethod(_imptest.NewDependencyMethod(ctrl, "Symlink")),
		Link:      newFileSystemMockLinkMethod(_imptest.NewDependencyMethod(ctrl, "Link")),
		Readlink:  newFileSystemMockReadlinkMethod(_imptest.NewDependencyMethod(ctrl, "Readlink")),
		Chmod:     newFileSystemMockChmodMethod(_imptest.NewDependencyMethod(ctrl, "Chmod")),
		Chtimes:   newFileSystemMockChtimesMethod(_imptest.NewDependencyMethod(ctrl, "Chtimes")),
		Truncate:  newFileSystemMockTruncateMethod(_imptest.NewDependencyMethod(ctrl, "Truncate")),
		SameFile:  newFileSystemMockSameFileMethod(_imptest.NewDependencyMethod(ctrl, "SameFile")),
		LinkCount: newFileSystemMockLinkCountMethod(_imptest.NewDependencyMethod(ctrl, "LinkCount")),
		Space:     newFileSystemMockSpaceMethod(_imptest.NewDependencyMethod(ctrl, "Space")),
		Getwd:     _imptest.NewDependencyMethod(ctrl, "Getwd"),
		TempDir:   _imptest.NewDependencyMethod(ctrl, "TempDir"),
	}
	h := &FileSystemMockHandle{
		Method:     methods,
		Controller: ctrl,
	}
	h.Mock = &mockFileSystemImpl{handle: h}
	return h
}

// mockFileSystemImpl implements filesystem.FileSystem.
type mockFileSystemImpl struct {
	handle *FileSystemMockHandle
}

// Chmod implements filesystem.FileSystem.Chmod.
func (impl *mockFileSystemImpl) Chmod(path string, mode os.FileMode) error {
	call := &_imptest.GenericCall{
		MethodName:   "Chmod",
		Args:         []any{path, mode},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// Chtimes implements filesystem.FileSystem.Chtimes.
func (impl *mockFileSystemImpl) Chtimes(path string, atime time.Time, mtime time.Time) error {
	call := &_imptest.GenericCall{
		MethodName:   "Chtimes",
		Args:         []any{path, atime, mtime},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// Create implements filesystem.FileSystem.Create.
func (impl *mockFileSystemImpl) Create(path string, perm os.FileMode) (filesystem.File, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Create",
		Args:         []any{path, perm},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 filesystem.File
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(filesystem.File); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Getwd implements filesystem.FileSystem.Getwd.
func (impl *mockFileSystemImpl) Getwd() (string, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Getwd",
		Args:         []any{},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 string
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(string); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Link implements filesystem.FileSystem.Link.
func (impl *mockFileSystemImpl) Link(target string, link string) error {
	call := &_imptest.GenericCall{
		MethodName:   "Link",
		Args:         []any{target, link},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// LinkCount implements filesystem.FileSystem.LinkCount.
func (impl *mockFileSystemImpl) LinkCount(path string) (uint64, error) {
	call := &_imptest.GenericCall{
		MethodName:   "LinkCount",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 uint64
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(uint64); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Lstat implements filesystem.FileSystem.Lstat.
func (impl *mockFileSystemImpl) Lstat(path string) (os.FileInfo, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Lstat",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 os.FileInfo
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(os.FileInfo); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Mkdir implements filesystem.FileSystem.Mkdir.
func (impl *mockFileSystemImpl) Mkdir(path string, perm os.FileMode) error {
	call := &_imptest.GenericCall{
		MethodName:   "Mkdir",
		Args:         []any{path, perm},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// Open implements filesystem.FileSystem.Open.
func (impl *mockFileSystemImpl) Open(path string) (filesystem.File, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Open",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 filesystem.File
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(filesystem.File); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// OpenDir implements filesystem.FileSystem.OpenDir.
func (impl *mockFileSystemImpl) OpenDir(path string) (filesystem.DirStream, error) {
	call := &_imptest.GenericCall{
		MethodName:   "OpenDir",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 filesystem.DirStream
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(filesystem.DirStream); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Readlink implements filesystem.FileSystem.Readlink.
func (impl *mockFileSystemImpl) Readlink(path string) (string, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Readlink",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 string
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(string); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Remove implements filesystem.FileSystem.Remove.
func (impl *mockFileSystemImpl) Remove(path string) error {
	call := &_imptest.GenericCall{
		MethodName:   "Remove",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// Rename implements filesystem.FileSystem.Rename.
func (impl *mockFileSystemImpl) Rename(oldpath string, newpath string) error {
	call := &_imptest.GenericCall{
		MethodName:   "Rename",
		Args:         []any{oldpath, newpath},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// SameFile implements filesystem.FileSystem.SameFile.
func (impl *mockFileSystemImpl) SameFile(path1 string, path2 string) (bool, error) {
	call := &_imptest.GenericCall{
		MethodName:   "SameFile",
		Args:         []any{path1, path2},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 bool
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(bool); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Space implements filesystem.FileSystem.Space.
func (impl *mockFileSystemImpl) Space(path string) (filesystem.SpaceInfo, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Space",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 filesystem.SpaceInfo
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(filesystem.SpaceInfo); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Stat implements filesystem.FileSystem.Stat.
func (impl *mockFileSystemImpl) Stat(path string) (os.FileInfo, error) {
	call := &_imptest.GenericCall{
		MethodName:   "Stat",
		Args:         []any{path},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 os.FileInfo
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(os.FileInfo); ok {
			result1 = value
		}
	}

	var result2 error
	if len(resp.ReturnValues) > 1 {
		if value, ok := resp.ReturnValues[1].(error); ok {
			result2 = value
		}
	}

	return result1, result2
}

// Style implements filesystem.FileSystem.Style.
func (impl *mockFileSystemImpl) Style() fspath.Style {
	call := &_imptest.GenericCall{
		MethodName:   "Style",
		Args:         []any{},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 fspath.Style
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(fspath.Style); ok {
			result1 = value
		}
	}

	return result1
}

// Symlink implements filesystem.FileSystem.Symlink.
func (impl *mockFileSystemImpl) Symlink(target string, link string) error {
	call := &_imptest.GenericCall{
		MethodName:   "Symlink",
		Args:         []any{target, link},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// TempDir implements filesystem.FileSystem.TempDir.
func (impl *mockFileSystemImpl) TempDir() string {
	call := &_imptest.GenericCall{
		MethodName:   "TempDir",
		Args:         []any{},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 string
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(string); ok {
			result1 = value
		}
	}

	return result1
}

// Truncate implements filesystem.FileSystem.Truncate.
func (impl *mockFileSystemImpl) Truncate(path string, size int64) error {
	call := &_imptest.GenericCall{
		MethodName:   "Truncate",
		Args:         []any{path, size},
		ResponseChan: make(chan _imptest.GenericResponse, 1),
	}
	impl.handle.Controller.CallChan <- call
	resp := <-call.ResponseChan
	if resp.Type == "panic" {
		panic(resp.PanicValue)
	}

	var result1 error
	if len(resp.ReturnValues) > 0 {
		if value, ok := resp.ReturnValues[0].(error); ok {
			result1 = value
		}
	}

	return result1
}

// newFileSystemMockChmodMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockChmodMethod(dm *_imptest.DependencyMethod) *FileSystemMockChmodMethod {
	m := &FileSystemMockChmodMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockChmodMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockChtimesMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockChtimesMethod(dm *_imptest.DependencyMethod) *FileSystemMockChtimesMethod {
	m := &FileSystemMockChtimesMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockChtimesMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockCreateMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockCreateMethod(dm *_imptest.DependencyMethod) *FileSystemMockCreateMethod {
	m := &FileSystemMockCreateMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockCreateMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockLinkCountMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockLinkCountMethod(dm *_imptest.DependencyMethod) *FileSystemMockLinkCountMethod {
	m := &FileSystemMockLinkCountMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockLinkCountMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockLinkMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockLinkMethod(dm *_imptest.DependencyMethod) *FileSystemMockLinkMethod {
	m := &FileSystemMockLinkMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockLinkMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockLstatMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockLstatMethod(dm *_imptest.DependencyMethod) *FileSystemMockLstatMethod {
	m := &FileSystemMockLstatMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockLstatMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockMkdirMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockMkdirMethod(dm *_imptest.DependencyMethod) *FileSystemMockMkdirMethod {
	m := &FileSystemMockMkdirMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockMkdirMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockOpenDirMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockOpenDirMethod(dm *_imptest.DependencyMethod) *FileSystemMockOpenDirMethod {
	m := &FileSystemMockOpenDirMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockOpenDirMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockOpenMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockOpenMethod(dm *_imptest.DependencyMethod) *FileSystemMockOpenMethod {
	m := &FileSystemMockOpenMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockOpenMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockReadlinkMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockReadlinkMethod(dm *_imptest.DependencyMethod) *FileSystemMockReadlinkMethod {
	m := &FileSystemMockReadlinkMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockReadlinkMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockRemoveMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockRemoveMethod(dm *_imptest.DependencyMethod) *FileSystemMockRemoveMethod {
	m := &FileSystemMockRemoveMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockRemoveMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockRenameMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockRenameMethod(dm *_imptest.DependencyMethod) *FileSystemMockRenameMethod {
	m := &FileSystemMockRenameMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockRenameMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockSameFileMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockSameFileMethod(dm *_imptest.DependencyMethod) *FileSystemMockSameFileMethod {
	m := &FileSystemMockSameFileMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockSameFileMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockSpaceMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockSpaceMethod(dm *_imptest.DependencyMethod) *FileSystemMockSpaceMethod {
	m := &FileSystemMockSpaceMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockSpaceMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockStatMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockStatMethod(dm *_imptest.DependencyMethod) *FileSystemMockStatMethod {
	m := &FileSystemMockStatMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockStatMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockSymlinkMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockSymlinkMethod(dm *_imptest.DependencyMethod) *FileSystemMockSymlinkMethod {
	m := &FileSystemMockSymlinkMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockSymlinkMethod{DependencyMethod: dm.Eventually}
	return m
}

// newFileSystemMockTruncateMethod creates a typed method wrapper with Eventually initialized.
func newFileSystemMockTruncateMethod(dm *_imptest.DependencyMethod) *FileSystemMockTruncateMethod {
	m := &FileSystemMockTruncateMethod{DependencyMethod: dm}
	m.Eventually = &FileSystemMockTruncateMethod{DependencyMethod: dm.Eventually}
	return m
}
