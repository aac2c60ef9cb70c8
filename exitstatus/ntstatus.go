package exitstatus

// ntstatusNames maps the NTSTATUS values that commonly surface as process
// exit codes to their symbolic names. The table is intentionally partial:
// codes missing here fall back to the hexadecimal form in Describe.
var ntstatusNames = map[uint32]string{
	// Warning severity.
	0x80000002: "STATUS_DATATYPE_MISALIGNMENT",
	0x80000003: "STATUS_BREAKPOINT",
	0x80000004: "STATUS_SINGLE_STEP",

	// Error severity.
	0xC0000001: "STATUS_UNSUCCESSFUL",
	0xC0000002: "STATUS_NOT_IMPLEMENTED",
	0xC0000004: "STATUS_INFO_LENGTH_MISMATCH",
	0xC0000005: "STATUS_ACCESS_VIOLATION",
	0xC0000006: "STATUS_IN_PAGE_ERROR",
	0xC0000008: "STATUS_INVALID_HANDLE",
	0xC000000D: "STATUS_INVALID_PARAMETER",
	0xC000000E: "STATUS_NO_SUCH_DEVICE",
	0xC000000F: "STATUS_NO_SUCH_FILE",
	0xC0000010: "STATUS_INVALID_DEVICE_REQUEST",
	0xC0000011: "STATUS_END_OF_FILE",
	0xC0000013: "STATUS_NO_MEDIA_IN_DEVICE",
	0xC0000017: "STATUS_NO_MEMORY",
	0xC000001D: "STATUS_ILLEGAL_INSTRUCTION",
	0xC0000022: "STATUS_ACCESS_DENIED",
	0xC0000023: "STATUS_BUFFER_TOO_SMALL",
	0xC0000024: "STATUS_OBJECT_TYPE_MISMATCH",
	0xC0000025: "STATUS_NONCONTINUABLE_EXCEPTION",
	0xC0000026: "STATUS_INVALID_DISPOSITION",
	0xC0000033: "STATUS_OBJECT_NAME_INVALID",
	0xC0000034: "STATUS_OBJECT_NAME_NOT_FOUND",
	0xC0000035: "STATUS_OBJECT_NAME_COLLISION",
	0xC000003A: "STATUS_OBJECT_PATH_NOT_FOUND",
	0xC0000043: "STATUS_SHARING_VIOLATION",
	0xC0000044: "STATUS_QUOTA_EXCEEDED",
	0xC0000054: "STATUS_FILE_LOCK_CONFLICT",
	0xC0000055: "STATUS_LOCK_NOT_GRANTED",
	0xC0000061: "STATUS_PRIVILEGE_NOT_HELD",
	0xC000006D: "STATUS_LOGON_FAILURE",
	0xC000007B: "STATUS_INVALID_IMAGE_FORMAT",
	0xC000007C: "STATUS_NO_TOKEN",
	0xC000008C: "STATUS_ARRAY_BOUNDS_EXCEEDED",
	0xC000008D: "STATUS_FLOAT_DENORMAL_OPERAND",
	0xC000008E: "STATUS_FLOAT_DIVIDE_BY_ZERO",
	0xC000008F: "STATUS_FLOAT_INEXACT_RESULT",
	0xC0000090: "STATUS_FLOAT_INVALID_OPERATION",
	0xC0000091: "STATUS_FLOAT_OVERFLOW",
	0xC0000092: "STATUS_FLOAT_STACK_CHECK",
	0xC0000093: "STATUS_FLOAT_UNDERFLOW",
	0xC0000094: "STATUS_INTEGER_DIVIDE_BY_ZERO",
	0xC0000095: "STATUS_INTEGER_OVERFLOW",
	0xC0000096: "STATUS_PRIVILEGED_INSTRUCTION",
	0xC00000B0: "STATUS_PIPE_DISCONNECTED",
	0xC00000BA: "STATUS_FILE_IS_A_DIRECTORY",
	0xC00000BB: "STATUS_NOT_SUPPORTED",
	0xC00000FD: "STATUS_STACK_OVERFLOW",
	0xC000010A: "STATUS_PROCESS_IS_TERMINATING",
	0xC0000120: "STATUS_CANCELLED",
	0xC0000135: "STATUS_DLL_NOT_FOUND",
	0xC0000138: "STATUS_ORDINAL_NOT_FOUND",
	0xC0000139: "STATUS_ENTRYPOINT_NOT_FOUND",
	0xC000013A: "STATUS_CONTROL_C_EXIT",
	0xC0000142: "STATUS_DLL_INIT_FAILED",
	0xC0000184: "STATUS_INVALID_DEVICE_STATE",
	0xC0000185: "STATUS_IO_DEVICE_ERROR",
	0xC0000194: "STATUS_POSSIBLE_DEADLOCK",
	0xC0000225: "STATUS_NOT_FOUND",
	0xC00002B4: "STATUS_FLOAT_MULTIPLE_FAULTS",
	0xC00002B5: "STATUS_FLOAT_MULTIPLE_TRAPS",
	0xC00002C9: "STATUS_REG_NAT_CONSUMPTION",
	0xC0000374: "STATUS_HEAP_CORRUPTION",
	0xC0000409: "STATUS_STACK_BUFFER_OVERRUN",
	0xC0000417: "STATUS_INVALID_CRUNTIME_PARAMETER",
	0xC0000420: "STATUS_ASSERTION_FAILURE",
	0xC0000602: "STATUS_FAIL_FAST_EXCEPTION",
	0xC0190030: "STATUS_LOG_CORRUPTION_DETECTED",
}
